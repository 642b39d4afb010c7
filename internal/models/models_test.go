package models

import "testing"

func TestMessageValidate_OptionsRequired(t *testing.T) {
	m := Message{HasOptions: true}
	if err := m.Validate(); err != ErrOptionsRequired {
		t.Errorf("expected ErrOptionsRequired, got %v", err)
	}
}

func TestMessageValidate_OptionFields(t *testing.T) {
	m := NewOptionsMessage([]Option{{Text: "India", Value: "from_india"}}, InputTypeSelect, "Select your country")
	if err := m.Validate(); err != nil {
		t.Errorf("valid options message should pass, got %v", err)
	}

	m = NewOptionsMessage([]Option{{Text: "", Value: "v"}}, InputTypeSelect, "")
	if err := m.Validate(); err != ErrOptionLabelEmpty {
		t.Errorf("expected ErrOptionLabelEmpty, got %v", err)
	}

	m = NewOptionsMessage([]Option{{Text: "x", Value: ""}}, InputTypeSelect, "")
	if err := m.Validate(); err != ErrOptionValueEmpty {
		t.Errorf("expected ErrOptionValueEmpty, got %v", err)
	}
}

func TestNewMessage_UniqueIDs(t *testing.T) {
	a := NewMessage("one", false)
	b := NewMessage("two", true)
	if a.ID == b.ID {
		t.Errorf("messages should get unique ids, both got %q", a.ID)
	}
	if !b.IsUser || a.IsUser {
		t.Error("IsUser flag not preserved")
	}
}

func TestStepDefinitionValidate_SingleContinuation(t *testing.T) {
	cases := []struct {
		name    string
		step    StepDefinition
		wantErr error
	}{
		{"options only", StepDefinition{Message: "m", Options: []Option{{Text: "a", Value: "b"}}}, nil},
		{"text only", StepDefinition{Message: "m", InputType: InputTypeText}, nil},
		{"follow-up only", StepDefinition{Message: "m", FollowUp: "visa_types"}, nil},
		{"terminal", StepDefinition{Message: "m"}, nil},
		{"text then follow-up", StepDefinition{Message: "m", InputType: InputTypeText, FollowUp: "visa_types"}, nil},
		{"options and follow-up", StepDefinition{Message: "m", Options: []Option{{Text: "a", Value: "b"}}, FollowUp: "visa_types"}, ErrAmbiguousContinuation},
	}
	for _, tc := range cases {
		if err := tc.step.Validate(); err != tc.wantErr {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
		}
	}
}

func TestLeadValidate(t *testing.T) {
	lead := Lead{Name: "Asha", Email: "asha@example.com", CurrentCountry: "India", Goal: "Work in the US"}
	if err := lead.Validate(); err != nil {
		t.Errorf("valid lead should pass, got %v", err)
	}

	cases := []struct {
		mutate  func(*Lead)
		wantErr error
	}{
		{func(l *Lead) { l.Name = "" }, ErrMissingName},
		{func(l *Lead) { l.Email = "" }, ErrMissingEmail},
		{func(l *Lead) { l.CurrentCountry = "" }, ErrMissingCurrentCountry},
		{func(l *Lead) { l.Goal = "" }, ErrMissingGoal},
	}
	for _, tc := range cases {
		l := lead
		tc.mutate(&l)
		if err := l.Validate(); err != tc.wantErr {
			t.Errorf("expected %v, got %v", tc.wantErr, err)
		}
	}
}
