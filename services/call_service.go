//go:generate go run go.uber.org/mock/mockgen -source=call_service.go -destination=../mocks/mock_call_service.go -package=mocks
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"partyline/contract"
	"partyline/domain/call"
	"partyline/domain/event"
	"partyline/domain/persona"
	pErrors "partyline/errors"
	"partyline/infrastructure/storage"

	"github.com/abadojack/whatlanggo"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const summaryErrorPrefix = "Error generating summary: "

type ICallService interface {
	CreateCall(ctx context.Context, cmd call.CreateCallCommand) (call.Call, error)
	AddToCall(ctx context.Context, cmd call.MembershipCommand) (call.Call, error)
	RemoveFromCall(ctx context.Context, cmd call.MembershipCommand) (call.Call, error)
	GetCall(ctx context.Context, id call.ID) (call.Call, error)
	ListCalls(ctx context.Context, limit int) ([]call.Call, error)
}

type CallService struct {
	log        *slog.Logger
	catalog    *persona.Catalog
	repository storage.ICallRepository
	fetcher    contract.PageFetcher
	summarizer contract.Summarizer
	publisher  contract.EventPublisher
	validate   *validator.Validate
	now        func() time.Time
}

func NewCallService(
	log *slog.Logger,
	catalog *persona.Catalog,
	repository storage.ICallRepository,
	fetcher contract.PageFetcher,
	summarizer contract.Summarizer,
	publisher contract.EventPublisher,
) *CallService {
	return &CallService{
		log:        log,
		catalog:    catalog,
		repository: repository,
		fetcher:    fetcher,
		summarizer: summarizer,
		publisher:  publisher,
		validate:   validator.New(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source, tests only.
func (s *CallService) WithClock(now func() time.Time) *CallService {
	s.now = now
	return s
}

// CreateCall fetches the page, has it summarized for the invited personas and
// stores the call. A failing summarizer does not fail the call: the error text
// becomes the content so the personas still have something to talk over.
func (s *CallService) CreateCall(ctx context.Context, cmd call.CreateCallCommand) (call.Call, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return call.Call{}, fmt.Errorf("%w: %v", pErrors.ErrInvalidCallRequest, err)
	}
	if err := s.catalog.Validate(cmd.Personas); err != nil {
		return call.Call{}, err
	}

	page, err := s.fetcher.Fetch(ctx, cmd.URL)
	if err != nil {
		s.log.Error("Unable to fetch page", "url", cmd.URL, "error", err)
		if !errors.Is(err, pErrors.ErrFetchFailed) && !errors.Is(err, pErrors.ErrUnsupportedContent) {
			err = fmt.Errorf("%w: %v", pErrors.ErrFetchFailed, err)
		}
		return call.Call{}, err
	}

	prompt := strings.Join(s.catalog.Prompts(cmd.Personas), "\n")
	summary, err := s.summarizer.Summarize(ctx, prompt, page)
	if err != nil {
		s.log.Warn("Summary failed, storing the error as content", "url", cmd.URL, "error", err)
		summary = summaryErrorPrefix + err.Error()
	}

	now := s.now()
	c := call.Call{
		ID:        call.ID("call-" + uuid.NewString()),
		URL:       cmd.URL,
		Personas:  lo.Uniq(cmd.Personas),
		Content:   summary,
		Language:  detectLanguage(page),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.repository.Save(c); err != nil {
		return call.Call{}, fmt.Errorf("save call %s: %w", c.ID, err)
	}

	s.log.Info("Call created", "call_id", c.ID, "url", c.URL, "personas", len(c.Personas), "language", c.Language)
	s.publisher.Publish(ctx, event.CallCreated{CallID: c.ID, URL: c.URL, Personas: c.Personas, At: now})
	return c, nil
}

func (s *CallService) AddToCall(ctx context.Context, cmd call.MembershipCommand) (call.Call, error) {
	return s.membership(ctx, cmd, true)
}

func (s *CallService) RemoveFromCall(ctx context.Context, cmd call.MembershipCommand) (call.Call, error) {
	return s.membership(ctx, cmd, false)
}

func (s *CallService) membership(ctx context.Context, cmd call.MembershipCommand, join bool) (call.Call, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return call.Call{}, fmt.Errorf("%w: %v", pErrors.ErrInvalidPayload, err)
	}
	if _, err := s.catalog.Get(cmd.Persona); err != nil {
		return call.Call{}, err
	}

	now := s.now()
	changed := false
	c, err := s.repository.Update(cmd.CallID, func(c *call.Call) error {
		if join {
			changed = c.Join(cmd.Persona, now)
		} else {
			changed = c.Leave(cmd.Persona, now)
		}
		return nil
	})
	if err != nil {
		return call.Call{}, err
	}
	if !changed {
		s.log.Debug("Membership unchanged", "call_id", cmd.CallID, "persona", cmd.Persona, "join", join)
		return c, nil
	}

	if join {
		s.log.Info("Persona joined", "call_id", c.ID, "persona", cmd.Persona)
		s.publisher.Publish(ctx, event.PersonaJoined{CallID: c.ID, Persona: cmd.Persona, At: now})
	} else {
		s.log.Info("Persona left", "call_id", c.ID, "persona", cmd.Persona)
		s.publisher.Publish(ctx, event.PersonaLeft{CallID: c.ID, Persona: cmd.Persona, At: now})
	}
	return c, nil
}

func (s *CallService) GetCall(_ context.Context, id call.ID) (call.Call, error) {
	return s.repository.Get(id)
}

func (s *CallService) ListCalls(_ context.Context, limit int) ([]call.Call, error) {
	return s.repository.List(limit)
}

func detectLanguage(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	info := whatlanggo.Detect(text)
	if info.Lang == -1 {
		return ""
	}
	return info.Lang.Iso6391()
}
