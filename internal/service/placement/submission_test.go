package placement

import (
	"net/url"
	"testing"
)

func TestSubmissionFromForm(t *testing.T) {
	body := url.Values{}
	body.Set("user_id", "7")
	body.Set("books", `[{"id":1,"shop_id":2,"quantity":1}]`)

	sub, ok := SubmissionFromForm([]byte(body.Encode()))
	if !ok {
		t.Fatal("expected form submission to parse")
	}
	if !sub.HasUserID || sub.UserID != "7" {
		t.Fatalf("unexpected user_id: %+v", sub)
	}
	if string(sub.Books) != `[{"id":1,"shop_id":2,"quantity":1}]` {
		t.Fatalf("unexpected books payload: %s", sub.Books)
	}
}

func TestSubmissionFromForm_MissingBooks(t *testing.T) {
	sub, ok := SubmissionFromForm([]byte("user_id=7"))
	if !ok {
		t.Fatal("expected form submission to parse")
	}
	if sub.Books != nil {
		t.Fatalf("expected nil books, got %q", sub.Books)
	}
}

func TestSubmissionFromForm_RejectsJSONBody(t *testing.T) {
	// JSON-тело не содержит ожидаемых полей формы: вызывающий
	// должен перейти к JSON-обрамлению.
	if _, ok := SubmissionFromForm([]byte(`{"user_id":7,"books":"[]"}`)); ok {
		t.Fatal("JSON body must not be accepted as a form")
	}
}

func TestSubmissionFromJSON_NumberAndArray(t *testing.T) {
	sub, err := SubmissionFromJSON([]byte(`{"user_id":7,"books":[{"id":1,"shop_id":2,"quantity":1}]}`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !sub.HasUserID || sub.UserID != "7" {
		t.Fatalf("unexpected user_id: %+v", sub)
	}
	if string(sub.Books) != `[{"id":1,"shop_id":2,"quantity":1}]` {
		t.Fatalf("unexpected books payload: %s", sub.Books)
	}
}

func TestSubmissionFromJSON_StringEncodedBooks(t *testing.T) {
	sub, err := SubmissionFromJSON([]byte(`{"user_id":"7","books":"[{\"id\":1,\"shop_id\":2,\"quantity\":1}]"}`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if sub.UserID != "7" {
		t.Fatalf("expected unquoted user_id, got %q", sub.UserID)
	}
	if string(sub.Books) != `[{"id":1,"shop_id":2,"quantity":1}]` {
		t.Fatalf("expected unwrapped books payload, got %s", sub.Books)
	}
}

func TestSubmissionFromJSON_AbsentFields(t *testing.T) {
	sub, err := SubmissionFromJSON([]byte(`{}`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if sub.HasUserID {
		t.Fatal("user_id must be reported as absent")
	}
	if sub.Books != nil {
		t.Fatal("books must be reported as absent")
	}
}

func TestSubmissionFromJSON_Malformed(t *testing.T) {
	cases := []string{
		`not json at all`,
		`[1,2,3]`,
		`"plain string"`,
	}
	for _, body := range cases {
		if _, err := SubmissionFromJSON([]byte(body)); err == nil {
			t.Fatalf("expected parse error for %q", body)
		}
	}
}

func TestCoerceInt(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{name: "number", raw: `7`, want: 7},
		{name: "quoted number", raw: `"7"`, want: 7},
		{name: "quoted with spaces", raw: `" 7 "`, want: 7},
		{name: "negative", raw: `-3`, want: -3},
		{name: "float", raw: `7.5`, wantErr: true},
		{name: "word", raw: `"seven"`, wantErr: true},
		{name: "null", raw: `null`, wantErr: true},
		{name: "empty", raw: ``, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := coerceInt([]byte(tc.raw))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
