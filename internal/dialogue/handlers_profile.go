package dialogue

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mfalcone/memoria/internal/domain"
	"github.com/mfalcone/memoria/internal/profile"
	"github.com/mfalcone/memoria/internal/texts"
)

func (c *Controller) handleAddress(ctx context.Context, ev domain.Event) domain.Response {
	addr, err := c.profile.Address(ctx, ev.ConsentToken, ev.DeviceID)
	switch {
	case err == nil:
		return c.say(c.tr.T(texts.Address, addr.String()) + c.tr.T(texts.PostSayHelp))
	case errors.Is(err, profile.ErrNotSet):
		return c.say(c.tr.T(texts.NoAddress))
	case errors.Is(err, profile.ErrUnauthorized):
		resp := c.say(c.tr.T(texts.AddressPermission))
		resp.Directives = append(resp.Directives, domain.PermissionsCardDirective{
			Scopes: []string{domain.PermissionAddress},
		})
		return resp
	default:
		slog.Error("address lookup failed", "error", err)
		return c.say(c.tr.T(texts.GenericError))
	}
}

func (c *Controller) handleNumber(ctx context.Context, ev domain.Event) domain.Response {
	num, err := c.profile.MobileNumber(ctx, ev.ConsentToken)
	switch {
	case err == nil:
		return c.say(c.tr.T(texts.MobileNumber, num.CountryCode, num.National) + c.tr.T(texts.PostSayHelp))
	case errors.Is(err, profile.ErrNotSet):
		return c.say(c.tr.T(texts.NoMobileNumber))
	case errors.Is(err, profile.ErrUnauthorized):
		resp := c.say(c.tr.T(texts.NumberPermission))
		resp.Directives = append(resp.Directives, domain.PermissionsCardDirective{
			Scopes: []string{domain.PermissionNumber},
		})
		return resp
	default:
		slog.Error("mobile number lookup failed", "error", err)
		return c.say(c.tr.T(texts.GenericError))
	}
}

func (c *Controller) handleEmail(ctx context.Context, ev domain.Event) domain.Response {
	email, err := c.profile.Email(ctx, ev.ConsentToken)
	switch {
	case err == nil:
		return c.say(c.tr.T(texts.Email, email) + c.tr.T(texts.PostSayHelp))
	case errors.Is(err, profile.ErrNotSet):
		return c.say(c.tr.T(texts.NoEmail))
	case errors.Is(err, profile.ErrUnauthorized):
		resp := c.say(c.tr.T(texts.EmailPermission))
		resp.Directives = append(resp.Directives, domain.PermissionsCardDirective{
			Scopes: []string{domain.PermissionEmail},
		})
		return resp
	default:
		slog.Error("email lookup failed", "error", err)
		return c.say(c.tr.T(texts.GenericError))
	}
}
