package provider

import "testing"

func TestFirstJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantKey string
		wantVal any
		wantErr bool
	}{
		{
			name:    "bare object",
			in:      `{"truck_number":"T-42"}`,
			wantKey: "truck_number",
			wantVal: "T-42",
		},
		{
			name:    "prose wrapped",
			in:      "Here is the extracted data:\n```json\n{\"odo_start\": 1200}\n``` hope this helps",
			wantKey: "odo_start",
			wantVal: float64(1200),
		},
		{
			name:    "nested braces",
			in:      `{"outer":{"inner":1},"etag_id":"E100"}`,
			wantKey: "etag_id",
			wantVal: "E100",
		},
		{
			name:    "braces inside strings",
			in:      `{"note":"odd { value } here","n":2}`,
			wantKey: "n",
			wantVal: float64(2),
		},
		{
			name:    "escaped quotes",
			in:      `{"note":"he said \"go\"","ok":true}`,
			wantKey: "ok",
			wantVal: true,
		},
		{
			name:    "placeholder echoed before object",
			in:      `The field "{image_data}" was read. {"etag_id":"E1","net_amount":2}`,
			wantKey: "etag_id",
			wantVal: "E1",
		},
		{
			name:    "brace noise only",
			in:      `template is {image_data} and nothing else`,
			wantErr: true,
		},
		{
			name:    "no object",
			in:      "sorry, I could not read the image",
			wantErr: true,
		},
		{
			name:    "unbalanced",
			in:      `{"a": 1`,
			wantErr: true,
		},
		{
			name:    "empty",
			in:      "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FirstJSONObject(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("FirstJSONObject(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("FirstJSONObject(%q) error: %v", tt.in, err)
			}
			if got[tt.wantKey] != tt.wantVal {
				t.Errorf("got[%q] = %v, want %v", tt.wantKey, got[tt.wantKey], tt.wantVal)
			}
		})
	}
}
