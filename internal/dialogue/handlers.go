package dialogue

import (
	"log/slog"

	"github.com/mfalcone/memoria/internal/domain"
	"github.com/mfalcone/memoria/internal/texts"
)

// handleLaunch greets the user. A first-ever session gets the long welcome,
// later sessions the short one; without a registered birthdate the launch
// chains straight into the registration sub-dialogue.
func (c *Controller) handleLaunch(state *domain.SessionState) domain.Response {
	greeting := c.tr.T(texts.WelcomeBack, state.Name)
	if state.SessionCounter == 0 {
		greeting = c.tr.T(texts.Welcome, state.Name)
	}

	if state.BirthdateAvailable() {
		return c.say(greeting + c.tr.T(texts.PreHelp))
	}
	return domain.Response{
		Speech:     greeting + c.tr.T(texts.Missing),
		Directives: []domain.Directive{domain.Delegate(domain.KindRegisterBirthday)},
	}
}

// handleRegisterBirthday stores the confirmed birthdate slots. The month
// arrives twice: the spoken name and the entity-resolved two-digit id.
// With the sons' number still unknown the registration chain continues.
func (c *Controller) handleRegisterBirthday(ev domain.Event, state *domain.SessionState) domain.Response {
	if !ev.Intent.Confirmed() {
		return c.say(c.tr.T(texts.Rejected))
	}

	state.Day = ev.Intent.Slot("day")
	state.Year = ev.Intent.Slot("year")
	state.MonthName = ev.Intent.Slot("month")
	state.Month = ev.Intent.SlotID("month")

	if state.SonsNumber == "" {
		return domain.Response{
			Directives: []domain.Directive{domain.Delegate(domain.KindRegisterSonsNumber)},
		}
	}
	return c.say(c.tr.T(texts.PostSayHelp))
}

func (c *Controller) handleSayBirthday(state *domain.SessionState) domain.Response {
	decision := DecideNext(state, FieldTimezone)
	switch {
	case decision.Delegate != domain.KindUnknown:
		return c.delegateMissing(decision.Delegate)
	case decision.Unavailable:
		return domain.Response{Speech: c.tr.T(texts.NoTimezone)}
	}

	stats, err := domain.ComputeBirthdayStats(state.Day, state.Month, state.Year, state.Timezone, c.now())
	if err != nil {
		slog.Error("birthday computation failed", "error", err)
		return c.say(c.tr.T(texts.GenericError))
	}
	state.Age = stats.Age
	state.DaysLeft = stats.DaysUntilBirthday

	var speech string
	if stats.DaysUntilBirthday == 0 {
		speech = c.tr.T(texts.Greet, state.Name) + c.tr.T(texts.NowTurn, stats.Age)
	} else {
		speech = c.tr.T(texts.Birthdate) +
			state.Day + "." + state.Month + "." + state.Year + " . " +
			c.tr.T(texts.DaysLeft, state.Name, stats.DaysUntilBirthday) +
			c.tr.T(texts.WillTurn, stats.Age+1)
	}
	return c.say(speech + c.tr.T(texts.PostSayHelp))
}

func (c *Controller) handleRegisterSonsNumber(ev domain.Event, state *domain.SessionState) domain.Response {
	if !ev.Intent.Confirmed() {
		return c.say(c.tr.T(texts.Cancel))
	}

	state.SonsNumber = ev.Intent.Slot("sonsNumber")
	if state.SonsNames == "" {
		return domain.Response{
			Directives: []domain.Directive{domain.Delegate(domain.KindRegisterSonsNames)},
		}
	}
	return c.say(c.tr.T(texts.PostSayHelp))
}

func (c *Controller) handleSaySonsNumber(state *domain.SessionState) domain.Response {
	if decision := DecideNext(state, FieldSonsNumber); decision.Delegate != domain.KindUnknown {
		return c.delegateMissing(decision.Delegate)
	}
	return c.say(c.tr.T(texts.SonsCount, state.SonsNumber) + c.tr.T(texts.PostSayHelp))
}

func (c *Controller) handleRegisterSonsNames(ev domain.Event, state *domain.SessionState) domain.Response {
	if !ev.Intent.Confirmed() {
		return c.say(c.tr.T(texts.Cancel))
	}

	state.SonsNames = ev.Intent.Slot("sonsNames")
	if state.EmergencyContact == "" {
		return domain.Response{
			Directives: []domain.Directive{domain.Delegate(domain.KindRegisterEmergencyContact)},
		}
	}
	return c.say(c.tr.T(texts.PostSayHelp))
}

func (c *Controller) handleSaySonsNames(state *domain.SessionState) domain.Response {
	if decision := DecideNext(state, FieldSonsNames); decision.Delegate != domain.KindUnknown {
		return c.delegateMissing(decision.Delegate)
	}
	return c.say(c.tr.T(texts.SonsNames) + state.SonsNames + " . " + c.tr.T(texts.PostSayHelp))
}

// handleRegisterEmergencyContact closes the registration chain; there is no
// further field to delegate to.
func (c *Controller) handleRegisterEmergencyContact(ev domain.Event, state *domain.SessionState) domain.Response {
	if !ev.Intent.Confirmed() {
		return c.say(c.tr.T(texts.Cancel))
	}
	state.EmergencyContact = ev.Intent.Slot("emergencyContact")
	return c.say(c.tr.T(texts.PostSayHelp))
}

func (c *Controller) handleSayEmergencyContact(state *domain.SessionState) domain.Response {
	if decision := DecideNext(state, FieldEmergencyContact); decision.Delegate != domain.KindUnknown {
		return c.delegateMissing(decision.Delegate)
	}
	return c.say(c.tr.T(texts.EmergencyContact) + state.EmergencyContact + " . " + c.tr.T(texts.PostSayHelp))
}

// handleConfirmGated speaks the content only after the platform's
// confirmation dialog was accepted; a declined dialog gets a brief
// acknowledgement instead.
func (c *Controller) handleConfirmGated(ev domain.Event, content texts.Key) domain.Response {
	if ev.Intent.Confirmed() {
		return c.say(c.tr.T(content) + c.tr.T(texts.PostSayHelp))
	}
	return c.say(c.tr.T(texts.OK) + c.tr.T(texts.PostSayHelp))
}

func (c *Controller) handleHelp(ev domain.Event) domain.Response {
	var speech string
	if ev.Intent.Confirmed() {
		speech = c.tr.T(texts.Help)
	} else {
		speech = c.tr.T(texts.OK) + c.tr.T(texts.PostSayHelp)
	}
	return domain.Response{Speech: speech, Reprompt: speech}
}

func (c *Controller) handleStop(state *domain.SessionState) domain.Response {
	return domain.Response{
		Speech:     c.tr.T(texts.Goodbye, state.Name),
		EndSession: true,
	}
}

// handleReflect echoes an unrecognized intent name. There is no open question
// to keep the session alive for, so it closes.
func (c *Controller) handleReflect(ev domain.Event) domain.Response {
	return domain.Response{
		Speech:     c.tr.T(texts.Reflector, ev.Intent.Name),
		EndSession: true,
	}
}
