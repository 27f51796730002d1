package dialogue

import (
	"github.com/mfalcone/memoria/internal/domain"
	"github.com/mfalcone/memoria/internal/texts"
)

// handleGoOut walks the leaving-the-house checklist one item per turn. The
// continue intent's "yes" routes here too, so the user only has to answer the
// closing question to keep going. The final item ends the session.
func (c *Controller) handleGoOut(ev domain.Event, state *domain.SessionState) domain.Response {
	seq := NewSequencer(ev.UserID)
	first := state.Count == 0
	item, last := seq.Next(state, ListGoOut)

	if last {
		return domain.Response{
			Speech:     item + c.tr.T(texts.ChecklistDone),
			EndSession: true,
		}
	}

	speech := item + c.tr.T(texts.ChecklistMore)
	if first {
		speech = c.tr.T(texts.ChecklistFirst) + speech
	}
	return domain.Response{
		Speech:   speech,
		Reprompt: c.tr.T(texts.ChecklistMore),
	}
}

func (c *Controller) handleActivityAdvice(ev domain.Event, state *domain.SessionState) domain.Response {
	item, _ := NewSequencer(ev.UserID).Next(state, ListActivities)
	return c.say(item + c.tr.T(texts.PostSayHelp))
}

// handleFirstGame reads the next repeat-after-me word list and caches it so
// the repeat intent can replay it verbatim.
func (c *Controller) handleFirstGame(ev domain.Event, state *domain.SessionState) domain.Response {
	item, _ := NewSequencer(ev.UserID).Next(state, ListWordGame)
	state.LastWordList = item
	return c.say(c.tr.T(texts.FirstGame) + item + " . ")
}

func (c *Controller) handleRepeat(state *domain.SessionState) domain.Response {
	if state.LastWordList == "" {
		return c.say(c.tr.T(texts.Fallback))
	}
	return domain.Response{
		Speech:   state.LastWordList,
		Reprompt: state.LastWordList,
	}
}

func (c *Controller) handlePoem(ev domain.Event, state *domain.SessionState) domain.Response {
	item, _ := NewSequencer(ev.UserID).Next(state, ListPoems)
	return c.say(item + c.tr.T(texts.PostSayHelp))
}
