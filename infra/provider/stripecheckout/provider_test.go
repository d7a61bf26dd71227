package stripecheckout

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fige/storefront/pkg/provider/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v82"
)

// sessionStream yields the given sessions and then keeps producing unrelated
// ones forever, the way the SDK's auto-paginating list iterator would. The
// counter records how many sessions the consumer actually examined.
func sessionStream(count *int, head ...*stripe.CheckoutSession) stripe.Seq2[*stripe.CheckoutSession, error] {
	return func(yield func(*stripe.CheckoutSession, error) bool) {
		for i := 0; ; i++ {
			session := &stripe.CheckoutSession{
				ID:                fmt.Sprintf("cs_test_filler_%d", i),
				ClientReferenceID: fmt.Sprintf("1717171717%03d-0a0a0a0a", i),
			}
			if i < len(head) {
				session = head[i]
			}
			*count++
			if !yield(session, nil) {
				return
			}
		}
	}
}

func TestScanForReference_StopsAtLimitOnMiss(t *testing.T) {
	var examined int

	_, err := scanForReference(sessionStream(&examined), "1717171717171-9f8e7d6c", 100)

	assert.ErrorIs(t, err, payment.ErrSessionNotFound)
	assert.Equal(t, 100, examined)
}

func TestScanForReference_MatchWithinLimit(t *testing.T) {
	var examined int
	stream := sessionStream(&examined,
		&stripe.CheckoutSession{ID: "cs_test_first", ClientReferenceID: "1717171717171-aaaaaaaa"},
		&stripe.CheckoutSession{ID: "cs_test_match", ClientReferenceID: "1717171717171-9f8e7d6c"},
	)

	id, err := scanForReference(stream, "1717171717171-9f8e7d6c", 100)

	assert.NoError(t, err)
	assert.Equal(t, "cs_test_match", id)
	assert.Equal(t, 2, examined)
}

func TestScanForReference_ListErrorPropagates(t *testing.T) {
	listErr := errors.New("api_connection_error: network failure")
	stream := stripe.Seq2[*stripe.CheckoutSession, error](
		func(yield func(*stripe.CheckoutSession, error) bool) {
			yield(nil, listErr)
		},
	)

	_, err := scanForReference(stream, "1717171717171-9f8e7d6c", 100)

	assert.ErrorIs(t, err, listErr)
	assert.NotErrorIs(t, err, payment.ErrSessionNotFound)
}

func TestToSession_FullExpansion(t *testing.T) {
	s := &stripe.CheckoutSession{
		ID:                "cs_test_a1B2c3",
		URL:               "https://checkout.stripe.com/c/pay/cs_test_a1B2c3",
		ClientReferenceID: "1717171717171-9f8e7d6c",
		AmountTotal:       50000,
		Currency:          stripe.CurrencyUSD,
		CustomerDetails: &stripe.CheckoutSessionCustomerDetails{
			Email: "buyer@example.com",
		},
		LineItems: &stripe.LineItemList{
			Data: []*stripe.LineItem{{
				Price: &stripe.Price{
					Product: &stripe.Product{Name: "Figé Luxury Fidget Spinner #03 (Pre-Order)"},
				},
			}},
		},
	}

	got := toSession(s)
	assert.Equal(t, "cs_test_a1B2c3", got.ID)
	assert.Equal(t, "1717171717171-9f8e7d6c", got.ClientReference)
	assert.Equal(t, "buyer@example.com", got.CustomerEmail)
	assert.Equal(t, int64(50000), got.AmountTotal)
	assert.Equal(t, "usd", got.Currency)
	assert.Equal(t, "Figé Luxury Fidget Spinner #03 (Pre-Order)", got.ProductName)
}

func TestToSession_MissingExpansions(t *testing.T) {
	got := toSession(&stripe.CheckoutSession{ID: "cs_test_bare"})
	assert.Equal(t, "cs_test_bare", got.ID)
	assert.Empty(t, got.CustomerEmail)
	assert.Empty(t, got.ProductName)
}
