package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memberDonationReq(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/member-donations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// Validation rejects bad input before any store call, so a zero Handler is
// safe here.
func TestCreateMemberDonationValidation(t *testing.T) {
	h := &Handler{}
	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing member", `{"activity_id":1,"amount":"10.00","donation_date":"2025-06-01"}`, "member_id is required"},
		{"missing activity", `{"member_id":"MBR-001","amount":"10.00","donation_date":"2025-06-01"}`, "activity_id is required"},
		{"negative amount", `{"member_id":"MBR-001","activity_id":1,"amount":"-5","donation_date":"2025-06-01"}`, "amount must be a non-negative decimal"},
		{"bad date", `{"member_id":"MBR-001","activity_id":1,"amount":"10.00","donation_date":"01/06/2025"}`, "donation_date must be YYYY-MM-DD"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := memberDonationReq(t, tc.body)
			require.NoError(t, h.CreateMemberDonation(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.want)
		})
	}
}
