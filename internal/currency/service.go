package currency

import (
	"context"
	"net/url"
	"strconv"

	"github.com/herathua/tripplanner-sub000/internal/api"
)

// Service exposes the backend currency endpoints: persisted per-user
// preference, the server's supported set, and server-side conversion used
// when amounts in existing records must be rewritten.
type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// Preference is the persisted per-user display currency.
type Preference struct {
	FirebaseUID  string `json:"firebaseUid,omitempty"`
	CurrencyCode string `json:"currencyCode"`
}

// RemoteInfo is the server's description of a supported currency.
type RemoteInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Conversion is the server's answer to a convert request.
type Conversion struct {
	Amount          float64 `json:"amount"`
	ConvertedAmount float64 `json:"convertedAmount"`
	FromCurrency    string  `json:"fromCurrency"`
	ToCurrency      string  `json:"toCurrency"`
	Rate            float64 `json:"exchangeRate"`
}

// UserCurrency fetches the persisted preference, defaulting when the user
// has never chosen one.
func (s *Service) UserCurrency(ctx context.Context, firebaseUID string) (string, error) {
	var pref Preference
	err := s.client.Get(ctx, "/currency/user/"+firebaseUID, nil, &pref)
	if api.IsNotFound(err) {
		return Default, nil
	}
	if err != nil {
		return "", err
	}
	if !Valid(pref.CurrencyCode) {
		return Default, nil
	}
	return pref.CurrencyCode, nil
}

// SetUserCurrency persists the preference. When convertExisting is set the
// backend rewrites stored amounts in the new currency.
func (s *Service) SetUserCurrency(ctx context.Context, firebaseUID, code string, convertExisting bool) error {
	if !Valid(code) {
		return ErrUnsupported
	}
	body := struct {
		CurrencyCode           string `json:"currencyCode"`
		ConvertExistingAmounts bool   `json:"convertExistingAmounts"`
	}{code, convertExisting}
	return s.client.Put(ctx, "/currency/user/"+firebaseUID, nil, body, nil)
}

// SupportedRemote lists the currencies the backend accepts, keyed by code.
func (s *Service) SupportedRemote(ctx context.Context) (map[string]RemoteInfo, error) {
	var out map[string]RemoteInfo
	if err := s.client.Get(ctx, "/currency/supported", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Convert asks the backend to convert an amount using its live rates.
func (s *Service) Convert(ctx context.Context, amount float64, from, to string) (Conversion, error) {
	if err := ValidateAmount(amount); err != nil {
		return Conversion{}, err
	}
	query := url.Values{
		"amount":       {strconv.FormatFloat(amount, 'f', -1, 64)},
		"fromCurrency": {from},
		"toCurrency":   {to},
	}
	var out Conversion
	if err := s.client.Post(ctx, "/currency/convert", query, nil, &out); err != nil {
		return Conversion{}, err
	}
	return out, nil
}
