package payments

import (
	"context"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// Checkout cria preferências de pagamento no Mercado Pago para produtos e
// cursos vendidos no site. Agendamento de serviço não passa por aqui.
type Checkout struct {
	prefs preference.Client
}

type CheckoutItem struct {
	Reference   string
	Title       string
	Description string
	PictureURL  string
	UnitPrice   float64
}

type CheckoutLink struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}

func NewCheckout(accessToken string) (*Checkout, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &Checkout{prefs: preference.NewClient(cfg)}, nil
}

func buildRequest(item CheckoutItem) preference.Request {
	return preference.Request{
		ExternalReference: item.Reference,
		Items: []preference.ItemRequest{
			{
				ID:          item.Reference,
				Title:       item.Title,
				Description: item.Description,
				PictureURL:  item.PictureURL,
				Quantity:    1,
				UnitPrice:   item.UnitPrice,
			},
		},
	}
}

func (c *Checkout) CreateLink(
	ctx context.Context,
	item CheckoutItem,
) (*CheckoutLink, error) {

	resp, err := c.prefs.Create(ctx, buildRequest(item))
	if err != nil {
		return nil, err
	}

	return &CheckoutLink{
		PreferenceID: resp.ID,
		InitPoint:    resp.InitPoint,
	}, nil
}
