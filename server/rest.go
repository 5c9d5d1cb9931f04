package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hupe1980/llmcouncil/core"
	"github.com/hupe1980/llmcouncil/logging"
	"github.com/samber/lo"
)

const (
	discussionIDHeader = "X-Discussion-ID"
	maxBodyBytes       = 1 << 20
)

var validate = validator.New()

// Council is the behaviour the HTTP layer needs.
type Council interface {
	Discuss(ctx context.Context, req core.DiscussRequest) (*core.Discussion, error)
	Members() core.MembersResponse
	Discussion(id string) (core.Discussion, error)
}

// RestHandler serves the council API.
type RestHandler struct {
	Council       Council
	Logger        logging.Logger
	DefaultRounds int
	// MaxRounds bounds the requested round count; 0 means core.DefaultMaxRounds.
	MaxRounds int
}

// discussRequest distinguishes an omitted round count from an explicit 0.
type discussRequest struct {
	Topic  string `json:"topic" validate:"required"`
	Rounds *int   `json:"rounds" validate:"omitempty,min=1"`
}

func (h *RestHandler) handleDiscuss(w http.ResponseWriter, r *http.Request) *apiError {
	var body discussRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &apiError{Status: http.StatusRequestEntityTooLarge, Message: "request body too large"}
		}
		return &apiError{Status: http.StatusBadRequest, Message: fmt.Sprintf("invalid JSON body: %v", err)}
	}
	if err := validate.Struct(body); err != nil {
		return &apiError{Status: http.StatusBadRequest, Message: validationMessage(err)}
	}
	maxRounds := lo.Ternary(h.MaxRounds > 0, h.MaxRounds, core.DefaultMaxRounds)
	if body.Rounds != nil {
		if err := validate.Var(*body.Rounds, fmt.Sprintf("max=%d", maxRounds)); err != nil {
			return &apiError{
				Status:  http.StatusBadRequest,
				Message: fmt.Sprintf("%v: rounds must be at most %d", core.ErrInvalidRequest, maxRounds),
			}
		}
	}

	req := core.DiscussRequest{
		Topic:  body.Topic,
		Rounds: lo.FromPtrOr(body.Rounds, lo.Ternary(h.DefaultRounds > 0, h.DefaultRounds, core.DefaultRounds)),
	}

	d, err := h.Council.Discuss(r.Context(), req)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusBadRequest {
			return &apiError{Status: status, Message: err.Error()}
		}
		return &apiError{Status: status, Message: fmt.Sprintf("Error in council discussion: %v", err)}
	}

	w.Header().Set(discussionIDHeader, d.ID)
	writeJSON(w, http.StatusOK, d.Result)
	return nil
}

func (h *RestHandler) handleMembers(w http.ResponseWriter, _ *http.Request) *apiError {
	writeJSON(w, http.StatusOK, h.Council.Members())
	return nil
}

func (h *RestHandler) handleDiscussion(w http.ResponseWriter, r *http.Request) *apiError {
	id := r.PathValue("id")
	d, err := h.Council.Discussion(id)
	if err != nil {
		return &apiError{Status: statusFor(err), Message: err.Error()}
	}
	w.Header().Set(discussionIDHeader, d.ID)
	writeJSON(w, http.StatusOK, d)
	return nil
}

func (h *RestHandler) handleHealth(w http.ResponseWriter, _ *http.Request) *apiError {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := lo.Map(verrs, func(fe validator.FieldError, _ int) string {
		switch fe.Field() {
		case "Topic":
			return "topic must not be empty"
		case "Rounds":
			return "rounds must be at least 1"
		default:
			return fe.Error()
		}
	})
	return fmt.Sprintf("%v: %s", core.ErrInvalidRequest, strings.Join(msgs, "; "))
}
