package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedMethods_EmptyConfigFallsBackToDefault(t *testing.T) {
	resolver := NewResolver()

	allowed := resolver.AllowedMethods(nil)
	require.Equal(t, DefaultMethods, allowed)

	allowed = resolver.AllowedMethods([]Method{})
	require.Equal(t, DefaultMethods, allowed)
}

func TestAllowedMethods_InvalidEntriesSkipped(t *testing.T) {
	resolver := NewResolver()

	allowed := resolver.AllowedMethods([]Method{Card, Method(99), Wallet})
	require.Equal(t, []Method{Card, Wallet}, allowed)

	// nothing valid left, default set substitutes
	allowed = resolver.AllowedMethods([]Method{Method(-5), Method(99)})
	require.Equal(t, DefaultMethods, allowed)
}

func TestEffectiveMethod_SelectionWinsWhenAllowed(t *testing.T) {
	resolver := NewResolver()
	enabled := []Method{BankTransfer, PayOnDelivery, Card}

	selection := Card
	effective := resolver.EffectiveMethod(enabled, &selection, BankTransfer)
	require.Equal(t, Card, effective)
}

func TestEffectiveMethod_DisallowedSelectionFallsThroughSilently(t *testing.T) {
	resolver := NewResolver()
	enabled := []Method{BankTransfer, PayOnDelivery}

	selection := Wallet
	effective := resolver.EffectiveMethod(enabled, &selection, PayOnDelivery)
	require.Equal(t, PayOnDelivery, effective)
}

func TestEffectiveMethod_ItemDefaultThenFirstAllowed(t *testing.T) {
	resolver := NewResolver()
	enabled := []Method{Card, Wallet}

	// no selection, item default allowed
	effective := resolver.EffectiveMethod(enabled, nil, Wallet)
	require.Equal(t, Wallet, effective)

	// no selection, item default not allowed: first allowed wins
	effective = resolver.EffectiveMethod(enabled, nil, PayOnDelivery)
	require.Equal(t, Card, effective)
}

func TestEffectiveMethod_AlwaysReturnsAllowedMember(t *testing.T) {
	resolver := NewResolver()

	configs := [][]Method{
		nil,
		{PayOnDelivery},
		{Card, Wallet, USSD},
		{Method(99)},
	}
	selections := []*Method{nil, methodPtr(BankTransfer), methodPtr(USSD)}
	defaults := []Method{BankTransfer, PayOnDelivery, Wallet}

	for _, enabled := range configs {
		allowed := resolver.AllowedMethods(enabled)
		for _, selection := range selections {
			for _, itemDefault := range defaults {
				effective := resolver.EffectiveMethod(enabled, selection, itemDefault)
				assert.Contains(t, allowed, effective,
					"effective method must be a member of the allowed set")
			}
		}
	}
}

func TestDirectiveOf(t *testing.T) {
	directive := DirectiveOf(BankTransfer, "IBAN 1234", "12 Market St")
	require.Equal(t, PlatformBankDetails, directive.Kind)
	require.Equal(t, "IBAN 1234", directive.Detail)

	directive = DirectiveOf(PayOnDelivery, "IBAN 1234", "12 Market St")
	require.Equal(t, CollectOnDelivery, directive.Kind)
	require.Equal(t, "12 Market St", directive.Detail)

	for _, method := range []Method{Card, Wallet, USSD} {
		directive = DirectiveOf(method, "IBAN 1234", "12 Market St")
		require.Equal(t, ExternalGateway, directive.Kind)
		require.Empty(t, directive.Detail)
	}
}

func TestMethodFromString(t *testing.T) {
	for _, name := range (Method(0)).Values() {
		method, err := FromString(name)
		require.NoError(t, err)
		require.Equal(t, name, method.String())
	}

	_, err := FromString("cheque")
	require.Error(t, err)
}

func methodPtr(method Method) *Method {
	return &method
}
