package sslcommerz

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	dompayment "example.com/bookbarn/app/internal/domain/payment"
)

const SandboxEndpoint = "https://sandbox.sslcommerz.com/gwprocess/v4/api.php"

// Client creates hosted payment sessions against the SSLCommerz v4 API.
// Every failure mode collapses into ErrGatewayUnavailable; callers never
// see raw transport errors.
type Client struct {
	endpoint  string
	storeID   string
	storePass string
	httpc     *http.Client
}

func New(endpoint, storeID, storePass string) *Client {
	if endpoint == "" {
		endpoint = SandboxEndpoint
	}
	return &Client{
		endpoint:  endpoint,
		storeID:   storeID,
		storePass: storePass,
		httpc:     &http.Client{Timeout: 15 * time.Second},
	}
}

type initResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

func (c *Client) CreateSession(ctx context.Context, session dompayment.Session) (string, error) {
	form := url.Values{}
	form.Set("store_id", c.storeID)
	form.Set("store_passwd", c.storePass)
	form.Set("total_amount", fmt.Sprintf("%.2f", session.Amount))
	form.Set("currency", session.Currency)
	form.Set("tran_id", session.TransactionID)
	form.Set("success_url", session.SuccessURL)
	form.Set("fail_url", session.FailURL)
	form.Set("cancel_url", session.CancelURL)
	form.Set("ipn_url", session.IPNURL)
	form.Set("shipping_method", "Courier")
	form.Set("product_name", "Books")
	form.Set("product_category", "Education")
	form.Set("product_profile", "general")
	form.Set("cus_name", session.CustomerName)
	form.Set("cus_email", session.CustomerEmail)
	form.Set("cus_add1", session.CustomerAddress)
	form.Set("cus_phone", session.CustomerPhone)
	form.Set("ship_name", session.ShipName)
	form.Set("ship_add1", session.ShipAddress)
	form.Set("ship_city", session.ShipCity)
	form.Set("ship_postcode", session.ShipPostcode)
	form.Set("ship_country", session.ShipCountry)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", dompayment.ErrGatewayUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", dompayment.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", dompayment.ErrGatewayUnavailable, resp.StatusCode)
	}

	var parsed initResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: %v", dompayment.ErrGatewayUnavailable, err)
	}
	if parsed.GatewayPageURL == "" {
		if parsed.FailedReason != "" {
			return "", fmt.Errorf("%w: %s", dompayment.ErrGatewayUnavailable, parsed.FailedReason)
		}
		return "", fmt.Errorf("%w: missing GatewayPageURL", dompayment.ErrGatewayUnavailable)
	}

	return parsed.GatewayPageURL, nil
}
