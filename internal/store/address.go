package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Ahmed-As3ad/e-commerce/commerce"
	"github.com/Ahmed-As3ad/e-commerce/internal/token"
)

// AllowedCities is the enumerated list a shipping address may use.
var AllowedCities = []string{
	"Cairo", "Alexandria", "Giza", "Shubra El Kheima", "Port Said", "Suez",
	"Luxor", "Mansoura", "Mahalla El Kubra", "Tanta", "Asyut", "Ismailia",
	"Fayoum", "Zagazig", "Aswan", "Damietta", "Damanhur", "Minya", "Beni Suef",
}

// egyptianMobile matches Egyptian mobile numbers with an optional +20 or 0
// prefix.
var egyptianMobile = regexp.MustCompile(`^(\+20|0)?1[0125][0-9]{8}$`)

// AddressForm is the client-side shape of a new address. Validation runs
// before any network call; invalid input never reaches the API.
type AddressForm struct {
	Name    string `validate:"required,min=2"`
	Details string `validate:"required,min=10"`
	Phone   string `validate:"required,egy_mobile"`
	City    string `validate:"required,egy_city"`
}

// ValidationError carries the human-readable reasons a form was rejected.
type ValidationError struct {
	Reasons []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Reasons) == 0 {
		return "store: invalid address"
	}
	return fmt.Sprintf("store: invalid address: %s", e.Reasons[0])
}

// IsValidationError checks if an error is a form validation error.
func IsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// Addresses caches the user's saved shipping addresses. Only complete
// records are surfaced for selection; partially-filled historical records
// are counted but hidden.
type Addresses struct {
	activity
	client   *commerce.Client
	keyring  *token.Keyring
	validate *validator.Validate

	mu   sync.RWMutex
	list []commerce.Address
}

// NewAddresses creates an address store over the given client and keyring.
func NewAddresses(client *commerce.Client, keyring *token.Keyring) *Addresses {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration with fixed tags cannot fail.
	_ = v.RegisterValidation("egy_mobile", func(fl validator.FieldLevel) bool {
		return egyptianMobile.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("egy_city", func(fl validator.FieldLevel) bool {
		for _, city := range AllowedCities {
			if fl.Field().String() == city {
				return true
			}
		}
		return false
	})

	return &Addresses{client: client, keyring: keyring, validate: v}
}

// Validate checks the form shape client-side and reports every failing
// field with a human-readable reason.
func (a *Addresses) Validate(form AddressForm) error {
	err := a.validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Reasons: []string{err.Error()}}
	}

	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		verr.Reasons = append(verr.Reasons, reasonFor(fe))
	}
	return verr
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		if fe.Tag() == "min" {
			return "name is too short"
		}
		return "name is required"
	case "Details":
		if fe.Tag() == "min" {
			return "address details are too short"
		}
		return "address details are required"
	case "Phone":
		if fe.Tag() == "egy_mobile" {
			return "invalid Egyptian phone number"
		}
		return "phone number is required"
	case "City":
		if fe.Tag() == "egy_city" {
			return fmt.Sprintf("city %q is not in the allowed list", fe.Value())
		}
		return "city is required"
	}
	return fe.Error()
}

// Add validates the form, then saves the address. The server's response is
// the full updated list and replaces the cache.
func (a *Addresses) Add(ctx context.Context, form AddressForm) error {
	if err := a.Validate(form); err != nil {
		return err
	}
	if !a.keyring.Has() {
		return ErrNotAuthenticated
	}

	a.begin()
	defer a.end()

	list, err := a.client.Addresses.Add(ctx, commerce.AddAddressRequest{
		Name:    form.Name,
		Details: form.Details,
		Phone:   form.Phone,
		City:    form.City,
	})
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.list = list
	a.mu.Unlock()
	return nil
}

// Refresh fetches the full address list and replaces the cache.
func (a *Addresses) Refresh(ctx context.Context) ([]commerce.Address, error) {
	if !a.keyring.Has() {
		return nil, ErrNotAuthenticated
	}

	a.begin()
	defer a.end()

	list, err := a.client.Addresses.List(ctx)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.list = list
	a.mu.Unlock()
	return a.All(), nil
}

// Delete removes an address, then re-fetches the full list. The deleted
// entry is never spliced out speculatively.
func (a *Addresses) Delete(ctx context.Context, addressID string) error {
	if !a.keyring.Has() {
		return ErrNotAuthenticated
	}

	a.begin()
	err := a.client.Addresses.Delete(ctx, addressID)
	a.end()
	if err != nil {
		return err
	}

	_, err = a.Refresh(ctx)
	return err
}

// All returns every cached address, complete or not.
func (a *Addresses) All() []commerce.Address {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]commerce.Address(nil), a.list...)
}

// Selectable returns only the complete addresses a user may pick from.
func (a *Addresses) Selectable() []commerce.Address {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]commerce.Address, 0, len(a.list))
	for _, addr := range a.list {
		if addr.Complete() {
			out = append(out, addr)
		}
	}
	return out
}

// HiddenCount returns how many incomplete addresses are being hidden, for
// the "N incomplete addresses hidden" notice.
func (a *Addresses) HiddenCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	hidden := 0
	for _, addr := range a.list {
		if !addr.Complete() {
			hidden++
		}
	}
	return hidden
}
