package command

import (
	"testing"
)

func TestRegisterRejectsDuplicates(t *testing.T) {
	s := NewService(Collaborators{})

	handler := func(s *Service, params interface{}) bool { return true }
	if err := s.Register(Command{ID: "test.cmd", Type: TypeCommand, Handler: handler}); err != nil {
		t.Fatal(err)
	}
	if err := s.Register(Command{ID: "test.cmd", Type: TypeCommand, Handler: handler}); err == nil {
		t.Fatal("duplicate registration must fail")
	}
	if err := s.Register(Command{ID: "", Type: TypeCommand, Handler: handler}); err == nil {
		t.Fatal("empty id must be rejected")
	}
	if err := s.Register(Command{ID: "test.other", Type: TypeCommand}); err == nil {
		t.Fatal("nil handler must be rejected")
	}
}

func TestExecuteUnknownCommandFails(t *testing.T) {
	s := NewService(Collaborators{})
	if s.ExecuteCommand("no.such.command", nil) {
		t.Fatal("unknown command must report failure")
	}
}

func TestExecutePassesParamsThrough(t *testing.T) {
	s := NewService(Collaborators{})

	var got interface{}
	s.MustRegister(Command{
		ID:   "test.echo",
		Type: TypeCommand,
		Handler: func(s *Service, params interface{}) bool {
			got = params
			return true
		},
	})

	if !s.ExecuteCommand("test.echo", 42) {
		t.Fatal("execution should succeed")
	}
	if got != 42 {
		t.Fatalf("handler saw %v, want 42", got)
	}
}

func TestListenersSeeOnlySuccessfulCommands(t *testing.T) {
	s := NewService(Collaborators{})
	s.MustRegister(Command{ID: "test.ok", Type: TypeCommand, Handler: func(s *Service, params interface{}) bool { return true }})
	s.MustRegister(Command{ID: "test.fail", Type: TypeCommand, Handler: func(s *Service, params interface{}) bool { return false }})

	var seen []string
	unsubscribe := s.OnCommandExecuted(func(id string, params interface{}) {
		seen = append(seen, id)
	})

	s.ExecuteCommand("test.ok", nil)
	s.ExecuteCommand("test.fail", nil)
	if len(seen) != 1 || seen[0] != "test.ok" {
		t.Fatalf("unexpected notifications: %v", seen)
	}

	unsubscribe()
	s.ExecuteCommand("test.ok", nil)
	if len(seen) != 1 {
		t.Fatal("unsubscribed listener must not be called")
	}
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	s := NewService(Collaborators{})
	cmd := Command{ID: "test.cmd", Type: TypeCommand, Handler: func(s *Service, params interface{}) bool { return true }}
	s.MustRegister(cmd)

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on duplicate MustRegister")
		}
	}()
	s.MustRegister(cmd)
}
