package api

import "github.com/mfalcone/memoria/internal/domain"

// Wire types for the platform's request and response envelopes. Field names
// follow the platform's JSON contract, not this package's conventions.

type requestEnvelope struct {
	Version string          `json:"version"`
	Session *wireSession    `json:"session"`
	Context *wireReqContext `json:"context"`
	Request *wireRequest    `json:"request"`
}

type wireSession struct {
	New        bool           `json:"new"`
	SessionID  string         `json:"sessionId"`
	Attributes map[string]any `json:"attributes"`
	User       *wireUser      `json:"user"`
}

type wireUser struct {
	UserID      string           `json:"userId"`
	Permissions *wirePermissions `json:"permissions"`
}

type wirePermissions struct {
	ConsentToken string `json:"consentToken"`
}

type wireReqContext struct {
	System *wireSystem `json:"System"`
}

type wireSystem struct {
	User   *wireUser   `json:"user"`
	Device *wireDevice `json:"device"`
}

type wireDevice struct {
	DeviceID string `json:"deviceId"`
}

type wireRequest struct {
	Type   string      `json:"type"`
	Locale string      `json:"locale"`
	Reason string      `json:"reason,omitempty"`
	Intent *wireIntent `json:"intent,omitempty"`

	// Connections.Response fields.
	Name    string              `json:"name,omitempty"`
	Status  *wireConnStatus     `json:"status,omitempty"`
	Payload *wireConnectPayload `json:"payload,omitempty"`
}

type wireIntent struct {
	Name               string              `json:"name"`
	ConfirmationStatus string              `json:"confirmationStatus"`
	Slots              map[string]wireSlot `json:"slots"`
}

type wireSlot struct {
	Value       string           `json:"value"`
	Resolutions *wireResolutions `json:"resolutions"`
}

type wireResolutions struct {
	PerAuthority []wireAuthority `json:"resolutionsPerAuthority"`
}

type wireAuthority struct {
	Values []wireResolvedValue `json:"values"`
}

type wireResolvedValue struct {
	Value wireEntity `json:"value"`
}

type wireEntity struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type wireConnStatus struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type wireConnectPayload struct {
	Status       string `json:"status"`
	IsCardThrown bool   `json:"isCardThrown"`
}

// domain converts the wire intent, collapsing entity resolution to the first
// authority's first resolved id.
func (i *wireIntent) domain() domain.Intent {
	out := domain.Intent{
		Name:               i.Name,
		ConfirmationStatus: domain.ConfirmationStatus(i.ConfirmationStatus),
	}
	if out.ConfirmationStatus == "" {
		out.ConfirmationStatus = domain.ConfirmationNone
	}
	if len(i.Slots) > 0 {
		out.Slots = make(map[string]domain.Slot, len(i.Slots))
		for name, s := range i.Slots {
			slot := domain.Slot{Value: s.Value}
			if s.Resolutions != nil {
				for _, auth := range s.Resolutions.PerAuthority {
					if len(auth.Values) > 0 {
						slot.ResolvedID = auth.Values[0].Value.ID
						break
					}
				}
			}
			out.Slots[name] = slot
		}
	}
	return out
}

type responseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          responseBody   `json:"response"`
}

type responseBody struct {
	OutputSpeech     *outputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *wireReprompt `json:"reprompt,omitempty"`
	Card             *wireCard     `json:"card,omitempty"`
	Directives       []any         `json:"directives,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

type outputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type wireReprompt struct {
	OutputSpeech outputSpeech `json:"outputSpeech"`
}

type wireCard struct {
	Type        string   `json:"type"`
	Permissions []string `json:"permissions,omitempty"`
}

type delegateDirective struct {
	Type          string        `json:"type"`
	UpdatedIntent updatedIntent `json:"updatedIntent"`
}

type updatedIntent struct {
	Name               string         `json:"name"`
	ConfirmationStatus string         `json:"confirmationStatus"`
	Slots              map[string]any `json:"slots"`
}

type sendRequestDirective struct {
	Type    string        `json:"type"`
	Name    string        `json:"name"`
	Payload askForPayload `json:"payload"`
	Token   string        `json:"token"`
}

type askForPayload struct {
	Type            string `json:"@type"`
	Version         string `json:"@version"`
	PermissionScope string `json:"permissionScope"`
}

// encodeResponse renders a turn result as a platform response envelope.
func encodeResponse(resp domain.Response) responseEnvelope {
	body := responseBody{ShouldEndSession: resp.EndSession}
	if resp.Speech != "" {
		body.OutputSpeech = &outputSpeech{Type: "PlainText", Text: resp.Speech}
	}
	if resp.Reprompt != "" {
		body.Reprompt = &wireReprompt{
			OutputSpeech: outputSpeech{Type: "PlainText", Text: resp.Reprompt},
		}
	}

	for _, d := range resp.Directives {
		switch d := d.(type) {
		case domain.DelegateDirective:
			body.Directives = append(body.Directives, delegateDirective{
				Type: "Dialog.Delegate",
				UpdatedIntent: updatedIntent{
					Name:               d.IntentName,
					ConfirmationStatus: string(domain.ConfirmationNone),
					Slots:              map[string]any{},
				},
			})
		case domain.PermissionsCardDirective:
			// The platform allows a single card per response; the last
			// permissions card wins.
			body.Card = &wireCard{
				Type:        "AskForPermissionsConsent",
				Permissions: d.Scopes,
			}
		case domain.VoicePermissionDirective:
			body.Directives = append(body.Directives, sendRequestDirective{
				Type: "Connections.SendRequest",
				Name: "AskFor",
				Payload: askForPayload{
					Type:            "AskForPermissionsConsentRequest",
					Version:         "1",
					PermissionScope: d.Scope,
				},
				Token: "verifier",
			})
		}
	}

	return responseEnvelope{
		Version:           "1.0",
		SessionAttributes: resp.SessionAttributes,
		Response:          body,
	}
}
