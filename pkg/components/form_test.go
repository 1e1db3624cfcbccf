package components

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

func TestFieldValidators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		validate FieldValidator
		value    string
		want     string
	}{
		{name: "required rejects empty", validate: Required(""), value: "", want: "This field is required"},
		{name: "required custom message", validate: Required("Name it"), value: "", want: "Name it"},
		{name: "required passes value", validate: Required(""), value: "x", want: ""},
		{name: "min length short", validate: MinLength(3), value: "ab", want: "Must be at least 3 characters"},
		{name: "min length counts runes", validate: MinLength(3), value: "héé", want: ""},
		{name: "min length skips empty", validate: MinLength(3), value: "", want: ""},
		{name: "max length long", validate: MaxLength(5), value: "abcdef", want: "Must be at most 5 characters"},
		{name: "max length ok", validate: MaxLength(5), value: "abcde", want: ""},
		{name: "email invalid", validate: Email(), value: "not-an-email", want: "Must be a valid email address"},
		{name: "email missing tld", validate: Email(), value: "a@b", want: "Must be a valid email address"},
		{name: "email valid", validate: Email(), value: "a@b.co", want: ""},
		{name: "email skips empty", validate: Email(), value: "", want: ""},
		{name: "pattern mismatch", validate: Pattern(regexp.MustCompile(`^\d+$`), "Digits only"), value: "12a", want: "Digits only"},
		{name: "pattern match", validate: Pattern(regexp.MustCompile(`^\d+$`), "Digits only"), value: "123", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.validate(tt.value))
		})
	}
}

func signupForm() *Form {
	return NewForm("signup").
		AddField(Field{Name: "name", Label: "Name", Required: true}).
		AddField(Field{Name: "email", Label: "Email", Type: "email", Required: true, Validators: []FieldValidator{Email()}}).
		AddField(Field{Name: "bio", Label: "Bio", Help: "A short introduction", Validators: []FieldValidator{MaxLength(80)}})
}

func TestFormSubmitFailureCollectsErrors(t *testing.T) {
	t.Parallel()

	submitted := false
	f := signupForm().WithOnSubmit(func(map[string]string) { submitted = true })
	f.SetValue("email", "nope")

	ok := f.Submit()

	require.False(t, ok)
	assert.False(t, submitted)
	assert.False(t, f.Submitted())

	errs := f.Errors()
	assert.Equal(t, map[string]string{
		"name":  "This field is required",
		"email": "Must be a valid email address",
	}, errs)
}

func TestFormValuesRevalidateAfterSubmitAttempt(t *testing.T) {
	t.Parallel()

	f := signupForm()

	// before any submit attempt, typing does not validate
	f.SetValue("email", "nope")
	_, hasErr := f.Error("email")
	assert.False(t, hasErr)

	require.False(t, f.Submit())
	_, hasErr = f.Error("email")
	require.True(t, hasErr)

	// fixing the value clears its error live
	f.SetValue("email", "a@b.co")
	_, hasErr = f.Error("email")
	assert.False(t, hasErr)

	// and breaking it again brings the error back
	f.SetValue("email", "broken")
	msg, hasErr := f.Error("email")
	require.True(t, hasErr)
	assert.Equal(t, "Must be a valid email address", msg)
}

func TestFormSubmitSuccess(t *testing.T) {
	t.Parallel()

	var got map[string]string
	f := signupForm().WithOnSubmit(func(values map[string]string) { got = values })
	f.SetValue("name", "Ada")
	f.SetValue("email", "ada@example.com")

	ok := f.Submit()

	require.True(t, ok)
	assert.True(t, f.Submitted())
	assert.Empty(t, f.Errors())
	assert.Equal(t, map[string]string{"name": "Ada", "email": "ada@example.com"}, got)

	// the callback owns a copy, not the live map
	got["name"] = "mutated"
	assert.Equal(t, "Ada", f.Value("name"))
}

func TestFormValidateWithoutSubmitting(t *testing.T) {
	t.Parallel()

	f := signupForm()
	errs := f.Validate()

	assert.Len(t, errs, 2)
	assert.False(t, f.Submitted())
}

func TestFormReset(t *testing.T) {
	t.Parallel()

	f := signupForm()
	f.SetValue("name", "Ada")
	f.SetValue("email", "ada@example.com")
	require.True(t, f.Submit())

	f.Reset()

	assert.Empty(t, f.Value("name"))
	assert.Empty(t, f.Errors())
	assert.False(t, f.Submitted())

	// reset also clears the submit attempt, so typing stops revalidating
	f.SetValue("email", "nope")
	_, hasErr := f.Error("email")
	assert.False(t, hasErr)
}

func TestFormRender(t *testing.T) {
	t.Parallel()

	f := signupForm()
	out := render(t, f)

	assert.Contains(t, out, `<form id="signup" class="space-y-4" novalidate>`)
	assert.Contains(t, out, `<label for="signup-name"`)
	assert.Contains(t, out, `id="signup-email"`)
	assert.Contains(t, out, `name="email"`)
	assert.Contains(t, out, `type="email"`)
	assert.Contains(t, out, `type="submit"`)
	assert.Contains(t, out, ">Submit</button>")
}

func TestFormRenderHelpText(t *testing.T) {
	t.Parallel()

	f := signupForm()
	out := render(t, f)

	assert.Contains(t, out, `<p id="signup-bio-help" class="mt-1 text-sm text-gray-500">A short introduction</p>`)
	assert.Contains(t, out, `aria-describedby="signup-bio-help"`)
}

func TestFormRenderErrors(t *testing.T) {
	t.Parallel()

	f := signupForm()
	f.SetValue("email", "nope")
	require.False(t, f.Submit())

	out := render(t, f)

	assert.Contains(t, out, `aria-invalid="true"`)
	assert.Contains(t, out, `aria-describedby="signup-email-error"`)
	assert.Contains(t, out, `<p id="signup-email-error" role="alert" class="mt-1 text-sm text-red-600">Must be a valid email address</p>`)
	assert.Contains(t, out, "border-red-500")
}

func TestFormRenderCustomSubmitLabel(t *testing.T) {
	t.Parallel()

	f := NewForm("login").WithSubmitLabel("Sign in")
	out := render(t, f)

	assert.Contains(t, out, ">Sign in</button>")
}

func TestFormRequiredFieldMarksInput(t *testing.T) {
	t.Parallel()

	f := NewForm("f").AddField(Field{Name: "name", Label: "Name", Required: true, Size: tailwind.SizeSM})
	out := render(t, f)

	assert.Contains(t, out, " required")
	assert.Contains(t, out, "px-2.5")
}
