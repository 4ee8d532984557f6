package paymentControllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Gateway creates a payment intent for an amount and hands back the
// opaque client secret the front end uses to collect payment. The amount
// charged is always the server-computed one; callers never pass through
// a client-supplied total.
type Gateway interface {
	CreateIntent(amount decimal.Decimal, currency string) (clientSecret string, err error)
}

// MinorUnits is the single canonical conversion from the stored decimal
// representation to the integer minor units the gateway wire format
// wants. Both the charge amount and the persisted order total flow
// through decimals, so the two call sites cannot drift.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// StripeGateway talks to the payment provider's REST API directly.
type StripeGateway struct {
	SecretKey string
	APIURL    string
	Client    *http.Client
}

type stripeIntentResponse struct {
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (g *StripeGateway) CreateIntent(amount decimal.Decimal, currency string) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(MinorUnits(amount), 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequest(http.MethodPost, g.APIURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+g.SecretKey)

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach payment provider: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var intent stripeIntentResponse
	if err := json.Unmarshal(body, &intent); err != nil {
		return "", fmt.Errorf("failed to parse payment provider response: %w", err)
	}
	if intent.Error != nil {
		return "", fmt.Errorf("payment provider error: %s", intent.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("payment provider error (%d): %s", resp.StatusCode, string(body))
	}
	if intent.ClientSecret == "" {
		return "", fmt.Errorf("payment provider returned empty client secret")
	}
	return intent.ClientSecret, nil
}

// LocalGateway mints signed client secrets without an external provider.
// Used in development and tests when no provider key is configured.
type LocalGateway struct {
	SigningKey []byte
}

func (g *LocalGateway) CreateIntent(amount decimal.Decimal, currency string) (string, error) {
	claims := jwt.MapClaims{
		"ref":      "pi_" + uuid.NewString(),
		"amount":   MinorUnits(amount),
		"currency": currency,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.SigningKey)
}

// NewGatewayFromEnv picks the provider gateway when a secret key is
// configured and the local one otherwise.
func NewGatewayFromEnv() Gateway {
	if key := os.Getenv("STRIPE_SECRET_KEY"); key != "" {
		apiURL := os.Getenv("STRIPE_API_URL")
		if apiURL == "" {
			apiURL = "https://api.stripe.com/v1/payment_intents"
		}
		return &StripeGateway{
			SecretKey: key,
			APIURL:    apiURL,
			Client:    &http.Client{Timeout: 15 * time.Second},
		}
	}

	signingKey := os.Getenv("PAYMENT_SIGNING_SECRET")
	if signingKey == "" {
		signingKey = "sportzone-dev-secret"
	}
	return &LocalGateway{SigningKey: []byte(signingKey)}
}

type CreateIntentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// POST /api/create-payment-intent
func CreatePaymentIntentHandler(gateway Gateway) gin.HandlerFunc {
	currency := os.Getenv("CURRENCY")
	if currency == "" {
		currency = "bgn"
	}

	return func(c *gin.Context) {
		var req CreateIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid amount"})
			return
		}

		secret, err := gateway.CreateIntent(decimal.NewFromFloat(req.Amount), currency)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating payment intent"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
	}
}
