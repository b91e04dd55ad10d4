package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"github.com/plataforma-367/traffic-case-api/api"
	"github.com/plataforma-367/traffic-case-api/config"
	"github.com/plataforma-367/traffic-case-api/workflow"
)

// fineCurrency is the ISO code for the Dominican peso
const fineCurrency = "dop"

// Fine handles online payment of case fines through Stripe checkout
type Fine struct {
	Engine *workflow.Engine
	Config config.Config
}

// CreateCheckoutSessionHandler opens a Stripe checkout session for the fine
// attached to a case
func (f Fine) CreateCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	c, err := f.Engine.GetCase(ctx, caseID)
	if err != nil {
		if errors.Is(err, workflow.ErrCaseNotFound) {
			config.ErrorStatus("case not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get case", http.StatusInternalServerError, w, err)
		return
	}
	if c.FineAmount == nil {
		config.ErrorStatus("case has no fine attached", http.StatusBadRequest, w,
			fmt.Errorf("case_id == %s", caseID))
		return
	}

	productName := fmt.Sprintf("Traffic fine %s", c.CaseNumber)
	if c.TrafficLaw != nil {
		productName = fmt.Sprintf("Traffic fine %s (%s art. %s)", c.CaseNumber, c.TrafficLaw.Article, c.TrafficLaw.Number)
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(fineCurrency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(productName),
					},
					UnitAmount: stripe.Int64(int64(*c.FineAmount * 100)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(f.Config.BaseURL + "/api/v1/success"),
		CancelURL:  stripe.String(f.Config.BaseURL + "/api/v1/cancel"),
	}
	params.AddMetadata("case_id", c.ID)
	params.AddMetadata("case_number", c.CaseNumber)

	s, err := session.New(params)
	if err != nil {
		config.ErrorStatus("failed to create checkout session", http.StatusInternalServerError, w, err)
		return
	}

	responseBody, err := json.Marshal(map[string]string{
		"session_id":   s.ID,
		"checkout_url": s.URL,
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(responseBody)
}

func (f Fine) handleSuccessRedirect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "payment completed"}`))
}

func (f Fine) handleCancelRedirect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "payment cancelled"}`))
}
