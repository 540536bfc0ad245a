package teller

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"universalis/internal/money"
	"universalis/internal/session"
	"universalis/internal/tax"
)

// RatesProvider hands out the schedule/policy snapshot a computation runs
// against. Implemented by the config manager; tests supply fixed rates.
type RatesProvider interface {
	Rates() tax.Rates
}

// Teller drives guided conversations. One Teller serves every
// conversation; per-conversation serialization lives in the session store.
type Teller struct {
	sessions *session.Store
	rates    RatesProvider
	log      *zap.Logger
}

// New returns a Teller using the given session registry and rate source.
func New(sessions *session.Store, rates RatesProvider, log *zap.Logger) *Teller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Teller{sessions: sessions, rates: rates, log: log}
}

// Begin registers a fresh session for a conversation that just opened and
// returns the greeting prompt. Any prior session for the id is replaced.
func (t *Teller) Begin(conversationID, owner string) Action {
	t.sessions.Create(conversationID, owner)
	t.log.Info("session opened",
		zap.String("conversation", conversationID),
		zap.String("owner", owner))
	return Prompt{Text: greeting}
}

// OnTurn feeds one inbound message through the state machine.
//
// Authorization runs first: only the owning actor, or an override-
// authorized actor, may advance the session; anyone else is Refused with
// no state change and no idle refresh. A session whose owner is empty is
// unowned and open to any actor. An absent or idle-expired session yields
// NoSession.
func (t *Teller) OnTurn(conversationID, actorID, raw string, overrideAuthorized bool) Action {
	var action Action = NoSession{}
	finished := false

	ok := t.sessions.Update(conversationID, func(s *session.Session, now time.Time) {
		if s.Owner != "" && actorID != s.Owner && !overrideAuthorized {
			t.log.Debug("turn refused",
				zap.String("conversation", conversationID),
				zap.String("actor", actorID))
			action = Refused{Text: refusalText}
			return
		}
		s.Touch(now)

		content := strings.TrimSpace(raw)
		action = t.dispatch(s, actorID, content)
		finished = s.State == session.StateFinished
		t.log.Debug("turn handled",
			zap.String("conversation", conversationID),
			zap.String("state", s.State.String()))
	})
	if !ok {
		return NoSession{}
	}

	// Finished is terminal: the session leaves the store immediately. The
	// transition is committed regardless of what the transport does with
	// the action.
	if finished {
		t.sessions.Remove(conversationID)
		t.log.Info("session finished", zap.String("conversation", conversationID))
	}
	return action
}

// dispatch routes one authorized turn by primary state.
func (t *Teller) dispatch(s *session.Session, actorID, content string) Action {
	choice := money.ParseChoice(content)
	switch s.State {
	case session.StateAwaitingChoice:
		return t.handleAwaitingChoice(s, content, choice)
	case session.StateCompanyMenu:
		return t.handleCompanyMenu(s, choice)
	case session.StateTaxCollecting:
		return t.handleTaxCollecting(s, content)
	case session.StateTransferCollecting:
		return t.handleTransferCollecting(s, content)
	case session.StateLoanCollecting:
		return t.handleLoanCollecting(s, actorID, content)
	}
	return Prompt{Text: promptLost}
}
