package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/edutrackr/edutrackr-api/internal/dto"
	"github.com/edutrackr/edutrackr-api/internal/models"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
	"github.com/edutrackr/edutrackr-api/pkg/jobs"
)

type flowStore interface {
	Create() *models.LoginFlow
	Get(id string) (*models.LoginFlow, error)
	Mutate(id string, fn func(*models.LoginFlow) error) (*models.LoginFlow, error)
	Delete(id string)
}

type sessionStore interface {
	Create(identity models.Identity) *models.Session
	Get(id string) (*models.Session, error)
	Delete(id string)
}

type codeDispatcher interface {
	Enqueue(job jobs.Job) error
}

// AuthConfig defines parameters for the login flow and token issuance.
type AuthConfig struct {
	TokenSecret   string
	TokenExpiry   time.Duration
	Issuer        string
	DispatchDelay time.Duration
	VerifyDelay   time.Duration
	StaffPassword string
}

// AuthService drives the three-step login flow and session lifecycle. Each
// flow walks role selection, a role-dependent details form and code
// verification; the two submission steps simulate a slow upstream round-trip
// and reject concurrent submissions on the same flow.
type AuthService struct {
	flows      flowStore
	sessions   sessionStore
	dispatcher codeDispatcher
	validator  *validator.Validate
	logger     *zap.Logger
	config     AuthConfig
	staffHash  []byte
}

// NewAuthService constructs an AuthService instance. The staff password is
// hashed eagerly so submissions always pay the same comparison cost.
func NewAuthService(flows flowStore, sessions sessionStore, dispatcher codeDispatcher, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	var staffHash []byte
	if config.StaffPassword != "" {
		staffHash, _ = bcrypt.GenerateFromPassword([]byte(config.StaffPassword), bcrypt.DefaultCost)
	}
	return &AuthService{
		flows:      flows,
		sessions:   sessions,
		dispatcher: dispatcher,
		validator:  validate,
		logger:     logger,
		config:     config,
		staffHash:  staffHash,
	}
}

// StartFlow opens a fresh login flow at role selection.
func (s *AuthService) StartFlow(ctx context.Context) *dto.FlowStateResponse {
	flow := s.flows.Create()
	s.logger.Debug("login flow started", zap.String("flow_id", flow.ID))
	return flowState(flow)
}

// GetFlow returns the externally visible state of a flow.
func (s *AuthService) GetFlow(ctx context.Context, id string) (*dto.FlowStateResponse, error) {
	flow, err := s.flows.Get(id)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "login flow not found or expired")
	}
	return flowState(flow), nil
}

// SelectRole fixes the actor role and advances to the details form.
func (s *AuthService) SelectRole(ctx context.Context, id string, req models.SelectRoleRequest) (*dto.FlowStateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid role payload")
	}
	if !models.ValidRole(req.Role) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown role")
	}

	flow, err := s.flows.Mutate(id, func(f *models.LoginFlow) error {
		if f.Step != models.StepRoleSelection {
			return appErrors.Clone(appErrors.ErrFlowStep, "role is already selected for this flow")
		}
		f.Role = req.Role
		f.Step = models.StepDetailsForm
		return nil
	})
	if err != nil {
		return nil, err
	}
	return flowState(flow), nil
}

// Back steps the flow backwards one screen. Going back from the details form
// discards the chosen role and any typed details; going back from code
// verification discards the typed code but keeps the form.
func (s *AuthService) Back(ctx context.Context, id string) (*dto.FlowStateResponse, error) {
	flow, err := s.flows.Mutate(id, func(f *models.LoginFlow) error {
		if f.Busy {
			return appErrors.Clone(appErrors.ErrFlowBusy, "cannot go back while a submission is in flight")
		}
		switch f.Step {
		case models.StepDetailsForm:
			f.Role = ""
			f.Form = models.LoginForm{}
			f.Step = models.StepRoleSelection
		case models.StepCodeVerification:
			f.Code = [models.CodeLength]string{}
			f.Step = models.StepDetailsForm
		default:
			return appErrors.Clone(appErrors.ErrFlowStep, "nothing to go back to")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return flowState(flow), nil
}

// SubmitDetails validates the role-dependent form and, after the simulated
// dispatch round-trip, issues a verification code and advances the flow.
// Only one submission may be in flight per flow; a second concurrent call
// fails with a conflict.
func (s *AuthService) SubmitDetails(ctx context.Context, id string, form models.LoginForm) (*dto.FlowStateResponse, error) {
	flow, err := s.flows.Mutate(id, func(f *models.LoginFlow) error {
		if f.Step != models.StepDetailsForm {
			return appErrors.Clone(appErrors.ErrFlowStep, "flow is not at the details step")
		}
		if f.Busy {
			return appErrors.Clone(appErrors.ErrFlowBusy, "details are already being submitted")
		}
		if err := validateDetails(f.Role, form); err != nil {
			return err
		}
		f.Form = form
		f.Busy = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.wait(ctx, s.config.DispatchDelay); err != nil {
		_, _ = s.flows.Mutate(id, func(f *models.LoginFlow) error {
			f.Busy = false
			return nil
		})
		return nil, err
	}

	if flow.Role == models.RoleCollege && !s.checkStaffPassword(form.Password) {
		_, _ = s.flows.Mutate(id, func(f *models.LoginFlow) error {
			f.Busy = false
			return nil
		})
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid staff credentials")
	}

	code := generateCode()
	s.dispatchCode(flow, code)

	flow, err = s.flows.Mutate(id, func(f *models.LoginFlow) error {
		f.Busy = false
		f.Code = [models.CodeLength]string{}
		f.Step = models.StepCodeVerification
		return nil
	})
	if err != nil {
		return nil, err
	}
	return flowState(flow), nil
}

// UpdateCodeDigit writes one character of the verification code. A value
// longer than one character is ignored without moving focus. NextPosition is
// the input position focus should advance to, or -1 when it should stay put.
func (s *AuthService) UpdateCodeDigit(ctx context.Context, id string, req models.CodeDigitRequest) (*dto.CodeDigitResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid code payload")
	}

	resp := &dto.CodeDigitResponse{NextPosition: -1}
	_, err := s.flows.Mutate(id, func(f *models.LoginFlow) error {
		if f.Step != models.StepCodeVerification {
			return appErrors.Clone(appErrors.ErrFlowStep, "flow is not at code verification")
		}
		if f.Busy {
			return appErrors.Clone(appErrors.ErrFlowBusy, "code is being verified")
		}
		if len([]rune(req.Value)) > 1 {
			resp.Complete = f.CodeComplete()
			return nil
		}
		f.Code[req.Position] = req.Value
		resp.Accepted = true
		if req.Value != "" && req.Position < models.CodeLength-1 {
			resp.NextPosition = req.Position + 1
		}
		resp.Complete = f.CodeComplete()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// VerifyCode completes the flow. Any fully populated code authenticates the
// demo portal; verification still pays the simulated round-trip and rejects
// concurrent calls. On success the flow is consumed and a session token
// issued.
func (s *AuthService) VerifyCode(ctx context.Context, id string) (*models.LoginResult, error) {
	flow, err := s.flows.Mutate(id, func(f *models.LoginFlow) error {
		if f.Step != models.StepCodeVerification {
			return appErrors.Clone(appErrors.ErrFlowStep, "flow is not at code verification")
		}
		if f.Busy {
			return appErrors.Clone(appErrors.ErrFlowBusy, "code is already being verified")
		}
		if !f.CodeComplete() {
			return appErrors.Clone(appErrors.ErrPreconditionFailed, "verification code is incomplete")
		}
		f.Busy = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.wait(ctx, s.config.VerifyDelay); err != nil {
		_, _ = s.flows.Mutate(id, func(f *models.LoginFlow) error {
			f.Busy = false
			return nil
		})
		return nil, err
	}

	identity := synthesizeIdentity(flow.Role, flow.Form)
	session := s.sessions.Create(identity)

	token, expiresAt, err := s.generateAccessToken(session)
	if err != nil {
		s.sessions.Delete(session.ID)
		_, _ = s.flows.Mutate(id, func(f *models.LoginFlow) error {
			f.Busy = false
			return nil
		})
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create access token")
	}

	s.flows.Delete(id)
	s.logger.Info("login completed",
		zap.String("flow_id", id),
		zap.String("session_id", session.ID),
		zap.String("role", string(identity.Role)),
	)

	return &models.LoginResult{
		AccessToken: token,
		ExpiresIn:   int64(time.Until(expiresAt).Seconds()),
		IssuedAt:    time.Now().UTC(),
		User:        identity,
	}, nil
}

// Logout destroys the session, invalidating tokens bound to it.
func (s *AuthService) Logout(ctx context.Context, sessionID string) {
	s.sessions.Delete(sessionID)
	s.logger.Info("session ended", zap.String("session_id", sessionID))
}

// CurrentUser returns the identity attached to the session.
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (*models.Identity, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return &session.Identity, nil
}

// ValidateToken parses an access token and checks its session still exists.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.TokenSecret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}

	if _, err := s.sessions.Get(claims.SessionID); err != nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "session no longer exists")
	}

	return claims, nil
}

func (s *AuthService) generateAccessToken(session *models.Session) (string, time.Time, error) {
	issuedAt := time.Now().UTC()
	expiresAt := issuedAt.Add(s.config.TokenExpiry)
	claims := &models.JWTClaims{
		UserID:    session.Identity.ID,
		SessionID: session.ID,
		Role:      session.Identity.Role,
		Name:      session.Identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   session.Identity.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.TokenSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *AuthService) checkStaffPassword(password string) bool {
	if len(s.staffHash) == 0 {
		// No staff password configured: the demo portal accepts any.
		return true
	}
	return bcrypt.CompareHashAndPassword(s.staffHash, []byte(password)) == nil
}

func (s *AuthService) dispatchCode(flow *models.LoginFlow, code string) {
	if s.dispatcher == nil {
		return
	}
	err := s.dispatcher.Enqueue(jobs.Job{
		ID:   uuid.NewString(),
		Type: "verification_code",
		Payload: map[string]string{
			"flow_id": flow.ID,
			"role":    string(flow.Role),
			"code":    code,
		},
		Enqueued: time.Now(),
	})
	if err != nil {
		s.logger.Warn("failed to enqueue verification code dispatch", zap.Error(err))
	}
}

func (s *AuthService) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return appErrors.Wrap(ctx.Err(), appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "submission cancelled")
	case <-timer.C:
		return nil
	}
}

func validateDetails(role models.UserRole, form models.LoginForm) error {
	missing := func(field string) error {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%s is required", field))
	}
	switch role {
	case models.RoleStudent:
		if form.Name == "" {
			return missing("name")
		}
		if form.ID == "" {
			return missing("college id")
		}
		if form.Section == "" {
			return missing("section")
		}
	case models.RoleParent:
		if form.Name == "" {
			return missing("name")
		}
		if form.Phone == "" {
			return missing("phone")
		}
	case models.RoleCollege:
		if form.ID == "" {
			return missing("employee id")
		}
		if form.Password == "" {
			return missing("password")
		}
	}
	return nil
}

func synthesizeIdentity(role models.UserRole, form models.LoginForm) models.Identity {
	id := form.ID
	if id == "" {
		id = uuid.NewString()
	}

	name := form.Name
	var stats *models.GamificationStats
	switch role {
	case models.RoleStudent:
		if name == "" {
			name = "Alex Johnson"
		}
		stats = &models.GamificationStats{Level: 12, XP: 2320, MaxXP: 3000}
	case models.RoleParent:
		if name == "" {
			name = "Mrs. Johnson"
		}
	case models.RoleCollege:
		if name == "" {
			name = "Admin Staff"
		}
	}

	return models.NewIdentity(id, name, role, models.AvatarURL(name), stats)
}

func generateCode() string {
	max := big.NewInt(10000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "0000"
	}
	return fmt.Sprintf("%04d", n.Int64())
}

func flowState(flow *models.LoginFlow) *dto.FlowStateResponse {
	filled := make([]bool, models.CodeLength)
	for i, d := range flow.Code {
		filled[i] = d != ""
	}
	return &dto.FlowStateResponse{
		ID:              flow.ID,
		Step:            flow.Step,
		Role:            flow.Role,
		FilledPositions: filled,
		Busy:            flow.Busy,
	}
}
