package provider

import "testing"

func TestValidateAgainstSchema(t *testing.T) {
	tests := []struct {
		name   string
		schema map[string]any
		data   string
		ok     bool
	}{
		{
			"delivery note full",
			BuildDeliveryNoteSchema(),
			`{"date":"2026-04-12","truck_number":"T-42","odo_start":100,"odo_end":200,"drop_details_odo":[120,150]}`,
			true,
		},
		{
			"delivery note extra fields pass",
			BuildDeliveryNoteSchema(),
			`{"date":"2026-04-12","confidence":0.93}`,
			true,
		},
		{
			"delivery note bad date format",
			BuildDeliveryNoteSchema(),
			`{"date":"12/04/2026"}`,
			false,
		},
		{
			"delivery note odo as string flagged",
			BuildDeliveryNoteSchema(),
			`{"odo_start":"100"}`,
			false,
		},
		{
			"toll entry complete",
			BuildTollEntrySchema(),
			`{"transaction_date":"2026-03-01 08:15:00","tolling_point":"Bridge","etag_id":"E100","net_amount":4.5}`,
			true,
		},
		{
			"toll entry missing etag flagged",
			BuildTollEntrySchema(),
			`{"transaction_date":"2026-03-01"}`,
			false,
		},
		{
			"not json at all",
			BuildTollEntrySchema(),
			`{{`,
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAgainstSchema(tt.schema, []byte(tt.data))
			if tt.ok && err != nil {
				t.Errorf("unexpected: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
