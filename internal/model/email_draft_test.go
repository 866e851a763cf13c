package model

import (
	"reflect"
	"testing"
)

func TestEmailDraft_SetRecipients(t *testing.T) {
	t.Parallel()

	var draft EmailDraft
	draft.SetRecipients([]string{"a@x.com", "b@x.com"}, []string{"c@x.com"})

	if got := draft.ToList(); !reflect.DeepEqual(got, []string{"a@x.com", "b@x.com"}) {
		t.Errorf("ToList() = %v", got)
	}
	if got := draft.CcList(); !reflect.DeepEqual(got, []string{"c@x.com"}) {
		t.Errorf("CcList() = %v", got)
	}
}

func TestEmailDraft_EmptyRecipients(t *testing.T) {
	t.Parallel()

	var draft EmailDraft
	draft.SetRecipients(nil, nil)

	if draft.ToEmails != "[]" || draft.CcEmails != "[]" {
		t.Errorf("empty recipient lists should encode as [], got to=%q cc=%q", draft.ToEmails, draft.CcEmails)
	}
	if got := draft.ToList(); len(got) != 0 {
		t.Errorf("ToList() = %v, want empty", got)
	}
}
