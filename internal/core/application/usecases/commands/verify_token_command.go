package commands

import (
	"errors"
	"strings"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/guard"
)

var (
	ErrVerifyTokenCommandIsNotConstructed = errors.New(
		"VerifyTokenCommand must be created via NewVerifyTokenCommand constructor",
	)
	ErrTokenIsRequired = errors.New("token is required")
)

// VerifyTokenCommand represents a customer scanning the package token on
// arrival to verify the chain of custody.
type VerifyTokenCommand struct { //nolint:recvcheck //using for validation
	token      string
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewVerifyTokenCommand creates a command to verify a scanned package token.
func NewVerifyTokenCommand(token string, customerID kernel.UUID) (VerifyTokenCommand, error) {
	verifyCommand := VerifyTokenCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		verifyCommand.setToken(token),
		verifyCommand.setCustomerID(customerID),
	); err != nil {
		return VerifyTokenCommand{}, err
	}

	return verifyCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyTokenCommand) Validate() error {
	return c.guard.Validate(ErrVerifyTokenCommandIsNotConstructed)
}

// Token returns the scanned token string.
func (c VerifyTokenCommand) Token() string {
	return c.token
}

// CustomerID returns the scanning customer's identifier.
func (c VerifyTokenCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *VerifyTokenCommand) setToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrTokenIsRequired
	}

	c.token = token
	return nil
}

func (c *VerifyTokenCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
