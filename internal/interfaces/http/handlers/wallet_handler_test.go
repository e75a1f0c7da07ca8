package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fuelpass.backend/internal/domain/entities"
	domainerrors "fuelpass.backend/internal/domain/errors"
)

type walletServiceStub struct {
	wallet *entities.Wallet
	err    error
}

func (s walletServiceStub) GetWallet(_ context.Context, userID uint) (*entities.Wallet, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.wallet, nil
}

func (s walletServiceStub) UpdateSettings(_ context.Context, userID uint, _ *entities.WalletSettingsInput) (*entities.Wallet, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.wallet, nil
}

type topUpServiceStub struct {
	wallet *entities.Wallet
	txn    *entities.Transaction
	err    error
}

func (s topUpServiceStub) TopUp(_ context.Context, userID uint, input *entities.TopUpInput) (*entities.Wallet, *entities.Transaction, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.wallet, s.txn, nil
}

func TestWalletHandler_GetWallet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &WalletHandler{walletUsecase: walletServiceStub{
		wallet: &entities.Wallet{ID: 1, UserID: 7, Balance: decimal.RequireFromString("250.00")},
	}}

	r := gin.New()
	r.GET("/wallet", withUser(7), h.GetWallet)

	w := doJSON(r, http.MethodGet, "/wallet", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"balance":"250"`) && !strings.Contains(w.Body.String(), `"balance":"250.00"`) {
		t.Fatalf("expected balance in body, got %s", w.Body.String())
	}
}

func TestWalletHandler_GetWallet_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &WalletHandler{walletUsecase: walletServiceStub{}}

	r := gin.New()
	r.GET("/wallet", h.GetWallet)

	w := doJSON(r, http.MethodGet, "/wallet", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestWalletHandler_TopUp(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &WalletHandler{settlementUsecase: topUpServiceStub{
		wallet: &entities.Wallet{ID: 1, UserID: 7, Balance: decimal.RequireFromString("700")},
		txn:    &entities.Transaction{TransactionID: "TOP-1", PaymentType: entities.PaymentTypeTopUp},
	}}

	r := gin.New()
	r.POST("/wallet/topup", withUser(7), h.TopUp)

	w := doJSON(r, http.MethodPost, "/wallet/topup", `{"amount":"200","paymentMethodId":3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "TOP-1") {
		t.Fatalf("expected transaction in body, got %s", w.Body.String())
	}
}

func TestWalletHandler_TopUp_BadBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &WalletHandler{settlementUsecase: topUpServiceStub{}}

	r := gin.New()
	r.POST("/wallet/topup", withUser(7), h.TopUp)

	w := doJSON(r, http.MethodPost, "/wallet/topup", `{"amount":"200"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing paymentMethodId, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestWalletHandler_TopUp_UsecaseError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &WalletHandler{settlementUsecase: topUpServiceStub{err: domainerrors.ErrNotFound}}

	r := gin.New()
	r.POST("/wallet/topup", withUser(7), h.TopUp)

	w := doJSON(r, http.MethodPost, "/wallet/topup", `{"amount":"200","paymentMethodId":3}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestWalletHandler_UpdateSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &WalletHandler{walletUsecase: walletServiceStub{
		wallet: &entities.Wallet{ID: 1, UserID: 7, AutoReloadEnabled: true},
	}}

	r := gin.New()
	r.PUT("/wallet/settings", withUser(7), h.UpdateSettings)

	body := `{"autoReloadEnabled":true,"autoReloadThreshold":"100","autoReloadAmount":"500","autoReloadPaymentMethodId":3}`
	w := doJSON(r, http.MethodPut, "/wallet/settings", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"autoReloadEnabled":true`) {
		t.Fatalf("expected settings in body, got %s", w.Body.String())
	}
}
