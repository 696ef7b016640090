package vacation

import (
	"testing"

	"github.com/leaveplan/leaveplan-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateVacationRequest {
	return CreateVacationRequest{
		Name:        "Summer trip",
		Destination: "Lisbon",
		LeaveType:   "EL",
		StartDate:   "2025-08-04",
		EndDate:     "2025-08-08",
	}
}

func TestCreateVacationRequest_NormalizePrefersCanonicalFields(t *testing.T) {
	req := CreateVacationRequest{
		StartDate: "2025-08-04",
		EndDate:   "2025-08-08",
		FromDate:  "2025-01-01",
		ToDate:    "2025-01-05",
	}
	req.Normalize()

	assert.Equal(t, "2025-08-04", req.StartDate)
	assert.Equal(t, "2025-08-08", req.EndDate)
	assert.Empty(t, req.FromDate)
	assert.Empty(t, req.ToDate)
}

func TestCreateVacationRequest_NormalizeFallsBackToLegacyFields(t *testing.T) {
	req := CreateVacationRequest{
		FromDate: "2025-08-04",
		ToDate:   "2025-08-08",
	}
	req.Normalize()

	assert.Equal(t, "2025-08-04", req.StartDate)
	assert.Equal(t, "2025-08-08", req.EndDate)
}

func TestCreateVacationRequest_NormalizeMixedShapes(t *testing.T) {
	req := CreateVacationRequest{
		StartDate: "2025-08-04",
		ToDate:    "2025-08-08",
	}
	req.Normalize()

	assert.Equal(t, "2025-08-04", req.StartDate)
	assert.Equal(t, "2025-08-08", req.EndDate)
}

func TestCreateVacationRequest_ValidateSuccess(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateVacationRequest_ValidateFailures(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*CreateVacationRequest)
		field   string
	}{
		{"missing name", func(r *CreateVacationRequest) { r.Name = "  " }, "name"},
		{"invalid leave type", func(r *CreateVacationRequest) { r.LeaveType = "ML" }, "leave_type"},
		{"missing start date", func(r *CreateVacationRequest) { r.StartDate = "" }, "start_date"},
		{"malformed start date", func(r *CreateVacationRequest) { r.StartDate = "08/04/2025" }, "start_date"},
		{"missing end date", func(r *CreateVacationRequest) { r.EndDate = "" }, "end_date"},
		{"end before start", func(r *CreateVacationRequest) { r.EndDate = "2025-08-01" }, "end_date"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validCreateRequest()
			c.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.field)
		})
	}
}
