package paymentControllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		amount string
		want   int64
	}{
		{"250.00", 25000},
		{"19.99", 1999},
		{"0.01", 1},
		{"100", 10000},
	}
	for _, tc := range cases {
		got := MinorUnits(decimal.RequireFromString(tc.amount))
		assert.Equal(t, tc.want, got, "amount %s", tc.amount)
	}
}

func TestLocalGatewayMintsVerifiableSecret(t *testing.T) {
	key := []byte("test-signing-key")
	gw := &LocalGateway{SigningKey: key}

	secret, err := gw.CreateIntent(decimal.RequireFromString("250.00"), "bgn")
	require.NoError(t, err)

	token, err := jwt.Parse(secret, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.EqualValues(t, 25000, claims["amount"])
	assert.Equal(t, "bgn", claims["currency"])
	assert.Contains(t, claims["ref"], "pi_")
}

func TestStripeGatewayParsesClientSecret(t *testing.T) {
	var gotAmount, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotAmount = r.PostForm.Get("amount")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"client_secret":"pi_123_secret_456"}`))
	}))
	defer srv.Close()

	gw := &StripeGateway{SecretKey: "sk_test_x", APIURL: srv.URL, Client: srv.Client()}
	secret, err := gw.CreateIntent(decimal.RequireFromString("19.99"), "bgn")
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_456", secret)
	assert.Equal(t, "1999", gotAmount)
	assert.Equal(t, "Bearer sk_test_x", gotAuth)
}

func TestStripeGatewaySurfacesProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	gw := &StripeGateway{SecretKey: "sk_test_x", APIURL: srv.URL, Client: srv.Client()}
	_, err := gw.CreateIntent(decimal.RequireFromString("19.99"), "bgn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declined")
}

func TestCreatePaymentIntentHandlerRejectsBadAmount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/create-payment-intent", CreatePaymentIntentHandler(&LocalGateway{SigningKey: []byte("k")}))

	for _, body := range []string{`{}`, `{"amount":0}`, `{"amount":-5}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}
