package validator_test

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/medsupply/pkg/validator"
)

type sampleStruct struct {
	Name  string `validate:"required,min=1,max=10"`
	Count *int   `validate:"required,gte=0"`
	Email string `validate:"omitempty,email"`
}

func intPtr(n int) *int { return &n }

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{Name: "hello", Count: intPtr(0)}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		in    sampleStruct
		field string
		want  string
	}{
		{"required", sampleStruct{Count: intPtr(1)}, "Name", "This field is required"},
		{"required pointer", sampleStruct{Name: "ok"}, "Count", "This field is required"},
		{"max", sampleStruct{Name: "12345678901", Count: intPtr(1)}, "Name", "Maximum length is 10"},
		{"gte", sampleStruct{Name: "ok", Count: intPtr(-1)}, "Count", "Must be greater than or equal to 0"},
		{"email", sampleStruct{Name: "ok", Count: intPtr(1), Email: "nope"}, "Email", "Must be a valid email address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&tt.in))
			if m[tt.field] != tt.want {
				t.Errorf("%s: got %q, want %q (all: %v)", tt.field, m[tt.field], tt.want, m)
			}
		})
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- RegisterCustomTypeFunc ---

type maybeInt struct {
	v   int
	set bool
}

type patchReq struct {
	Count maybeInt `json:"count" validate:"omitempty,gte=0"`
}

func init() {
	pkgvalidator.RegisterCustomTypeFunc(func(field reflect.Value) any {
		m := field.Interface().(maybeInt)
		if !m.set {
			return nil
		}
		return m.v
	}, maybeInt{})
}

func TestRegisterCustomTypeFunc(t *testing.T) {
	tests := []struct {
		name    string
		in      patchReq
		wantErr bool
	}{
		{"unset is skipped", patchReq{}, false},
		{"set zero", patchReq{Count: maybeInt{v: 0, set: true}}, false},
		{"set positive", patchReq{Count: maybeInt{v: 5, set: true}}, false},
		{"set negative", patchReq{Count: maybeInt{v: -1, set: true}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pkgvalidator.Validate(&tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
			if tt.wantErr && pkgvalidator.FormatValidationErrors(err)["count"] == "" {
				t.Errorf("expected a message keyed by the json name, got %v", pkgvalidator.FormatValidationErrors(err))
			}
		})
	}
}

// --- ValidateRequest ---

type articleReq struct {
	Name  string `json:"name"  validate:"required,max=255"`
	Unit  string `json:"unit"  validate:"required,max=255"`
	Count *int   `json:"count" validate:"required,gte=0"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"name":"Gauze","unit":"box","count":50}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[articleReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Name != "Gauze" || *req.Count != 50 {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[articleReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_wrongType(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Gauze","unit":"box","count":"many"}`))
	w := httptest.NewRecorder()

	if _, ok := pkgvalidator.ValidateRequest[articleReq](w, r); ok {
		t.Fatal("expected ok=false for a string count")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	body := `{"name":"Gauze","unit":"box"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[articleReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing count")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Validation failed") || !strings.Contains(w.Body.String(), `"count"`) {
		t.Errorf("expected count validation error in body, got: %s", w.Body.String())
	}
}
