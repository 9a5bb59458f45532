package prompt

import "testing"

func TestScript_ReplaysInOrder(t *testing.T) {
	s := NewScript(Choice(2), Choice(true), Cancel[string]())

	sel, err := s.Select(Select{Message: "pick"})
	if err != nil || sel.Value != 2 || sel.Cancelled {
		t.Fatalf("Select() = %+v, %v", sel, err)
	}
	ok, err := s.Confirm(Confirm{Message: "sure?"})
	if err != nil || !ok.Value {
		t.Fatalf("Confirm() = %+v, %v", ok, err)
	}
	txt, err := s.Text(Text{Message: "title"})
	if err != nil || !txt.Cancelled {
		t.Fatalf("Text() = %+v, %v", txt, err)
	}
	if len(s.Asked) != 3 {
		t.Errorf("Asked = %d, want 3", len(s.Asked))
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", s.Remaining())
	}
}

func TestScript_Mismatch(t *testing.T) {
	s := NewScript(Choice("oops"))
	if _, err := s.Select(Select{}); err == nil {
		t.Fatal("expected error for mismatched answer type")
	}
	if _, err := NewScript().Confirm(Confirm{}); err == nil {
		t.Fatal("expected error for exhausted script")
	}
}

func TestDefaults(t *testing.T) {
	var p Prompter = Defaults{}
	sel, _ := p.Select(Select{Options: []Option{{Label: "a"}, {Label: "b"}}, Default: 1})
	if sel.Value != 1 {
		t.Errorf("Select default = %d, want 1", sel.Value)
	}
	empty, _ := p.Select(Select{})
	if !empty.Cancelled {
		t.Error("Select with no options should cancel")
	}
	txt, _ := p.Text(Text{Default: "Song"})
	if txt.Value != "Song" {
		t.Errorf("Text default = %q", txt.Value)
	}
	multi, _ := p.MultiSelect(MultiSelect{Options: []Option{{Label: "en"}}})
	if len(multi.Value) != 0 || multi.Cancelled {
		t.Errorf("MultiSelect default = %+v", multi)
	}
}

func TestOption_Echo(t *testing.T) {
	if got := (Option{Label: "long label"}).Echo(); got != "long label" {
		t.Errorf("Echo() = %q", got)
	}
	if got := (Option{Label: "long label", Answer: "137 - avc1"}).Echo(); got != "137 - avc1" {
		t.Errorf("Echo() = %q", got)
	}
}
