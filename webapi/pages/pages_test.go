package pages_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/fige/storefront/webapi/testutils"
	"github.com/stretchr/testify/suite"
)

type PagesTestSuite struct {
	suite.Suite
	ta *testutils.TestApp
}

func (s *PagesTestSuite) SetupTest() {
	s.ta = testutils.NewTestApp()
}

func (s *PagesTestSuite) get(target string) string {
	resp := s.ta.MakeRequest("GET", target, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return string(body)
}

func (s *PagesTestSuite) TestLanding_RendersAllUnits() {
	body := s.get("/")

	for _, id := range []string{"#01", "#02", "#03", "#04", "#05"} {
		s.Contains(body, "Figé "+id)
	}
	// Two sold units render no pre-order button.
	s.Equal(3, strings.Count(body, `class="preorder-button"`))
	s.Contains(body, "pk_test_fake")
}

func (s *PagesTestSuite) TestLanding_NoCancellationBannerByDefault() {
	body := s.get("/")
	s.NotContains(body, "payment was cancelled")
}

func (s *PagesTestSuite) TestLanding_CancellationBanner() {
	body := s.get("/?payment-cancelled=true")
	s.Contains(body, "payment was cancelled")
	// The cancel flow never touches verification.
	s.Empty(s.ta.Provider.RetrievedID)
	s.Empty(s.ta.Provider.FindRef)
}

func (s *PagesTestSuite) TestStaticAssets_Served() {
	s.Contains(s.get("/css/site.css"), ".preorder-grid")

	for _, unit := range []string{"01", "02", "03", "04", "05"} {
		s.Contains(s.get("/images/"+unit+".svg"), "#"+unit)
	}
}

func (s *PagesTestSuite) TestPaymentSuccess_RendersShell() {
	body := s.get("/payment-success")
	s.Contains(body, "Verifying your payment")
	s.Contains(body, "/api/checkout_sessions/verify")
	// Verification happens from the browser, not during the page render.
	s.Empty(s.ta.Provider.RetrievedID)
}

func TestPagesTestSuite(t *testing.T) {
	suite.Run(t, new(PagesTestSuite))
}
