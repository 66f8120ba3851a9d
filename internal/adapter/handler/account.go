package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jgonzalezans/am-challenge/internal/core/domain"
	"github.com/jgonzalezans/am-challenge/internal/core/service"
)

func init() {
	// The API speaks plain JSON numbers for balances.
	decimal.MarshalJSONWithoutQuotes = true
}

type AccountHandler struct {
	Service *service.Ledger
}

// CreateAccountRequest defines what the user sends us. Balance is a pointer
// so a missing field can be told apart from an explicit zero.
type CreateAccountRequest struct {
	AccountID string           `json:"accountId"`
	Balance   *decimal.Decimal `json:"balance"`
}

type TransferRequest struct {
	AccountFromID string          `json:"accountFromId"`
	AccountToID   string          `json:"accountToId"`
	Amount        decimal.Decimal `json:"amount"`
}

func (h *AccountHandler) CreateAccount(c *fiber.Ctx) error {
	var req CreateAccountRequest

	// 1. Parse JSON
	if err := c.BodyParser(&req); err != nil {
		slog.Warn("Invalid account body", "error", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	// 2. Validate Input
	if req.AccountID == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "accountId is required"})
	}
	if req.Balance == nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "balance is required"})
	}
	if req.Balance.IsNegative() {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "balance cannot be negative"})
	}

	// 3. Call the Ledger
	account := domain.Account{ID: req.AccountID, Balance: *req.Balance}
	if err := h.Service.CreateAccount(account); err != nil {
		slog.Warn("Failed to create account", "error", err, "account_id", req.AccountID)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slog.Info("✅ Account Created", "account_id", account.ID)

	// 4. Return Success
	return c.Status(http.StatusCreated).JSON(account)
}

func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	id := c.Params("id")

	account, err := h.Service.GetAccount(id)
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(account)
}

func (h *AccountHandler) Transfer(c *fiber.Ctx) error {
	var req TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.AccountFromID == "" || req.AccountToID == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "accountFromId and accountToId are required"})
	}

	if err := h.Service.Transfer(req.AccountFromID, req.AccountToID, req.Amount); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrAccountNotFound) {
			status = http.StatusNotFound
		}
		slog.Warn("Transfer rejected", "from", req.AccountFromID, "to", req.AccountToID, "error", err)
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	slog.Info("💸 Transfer Completed", "from", req.AccountFromID, "to", req.AccountToID, "amount", req.Amount)

	return c.JSON(fiber.Map{"status": "success", "message": "Transfer completed successfully"})
}
