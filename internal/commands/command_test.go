package commands

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/todo/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add buy milk", TypeAdd},
		{"new call mom", TypeAdd},
		{"toggle 2", TypeToggle},
		{"done", TypeToggle},
		{"rename 3 buy oat milk", TypeRename},
		{"rm #4", TypeDelete},
		{"clear", TypeClear},
		{"filter done", TypeFilter},
		{"/theme", TypeTheme},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseArguments(t *testing.T) {
	cmd, err := Parse("/add   pay   rent ")
	if err != nil || cmd.Add.Name != "pay rent" {
		t.Fatalf("unexpected add parse: %+v %v", cmd.Add, err)
	}

	cmd, err = Parse("toggle")
	if err != nil || !cmd.Target.Selected() {
		t.Fatalf("toggle without id should target selection: %+v %v", cmd.Target, err)
	}

	cmd, err = Parse("delete #7")
	if err != nil || cmd.Target.ID != 7 {
		t.Fatalf("unexpected delete target: %+v %v", cmd.Target, err)
	}

	cmd, err = Parse("rename 3 buy oat milk")
	if err != nil || cmd.Rename.Target.ID != 3 || cmd.Rename.Name != "buy oat milk" {
		t.Fatalf("unexpected rename parse: %+v %v", cmd.Rename, err)
	}

	cmd, err = Parse("filter not done")
	if err != nil || cmd.Filter.Filter != model.FilterNotDone {
		t.Fatalf("unexpected filter parse: %+v %v", cmd.Filter, err)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		code ErrorCode
	}{
		{"", ErrCodeEmptyInput},
		{"  /  ", ErrCodeEmptyInput},
		{"/unknown do x", ErrCodeUnknownCommand},
		{"add", ErrCodeInvalidArgument},
		{"toggle abc", ErrCodeInvalidArgument},
		{"toggle 0", ErrCodeInvalidArgument},
		{"delete 1 2", ErrCodeInvalidArgument},
		{"rename 1", ErrCodeInvalidArgument},
		{"filter someday", ErrCodeInvalidArgument},
		{"clear now", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != tc.code {
			t.Fatalf("parse %q: expected %s, got %v", tc.in, tc.code, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Name != "write docs" {
				t.Fatalf("unexpected name: %q", a.Name)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteDispatchesTargets(t *testing.T) {
	var got []string
	handlers := Handlers{
		Toggle: func(tg Target) (Result, error) { got = append(got, "toggle"); return Result{}, nil },
		Delete: func(tg Target) (Result, error) { got = append(got, "delete"); return Result{}, nil },
		Clear:  func() (Result, error) { got = append(got, "clear"); return Result{}, nil },
		Theme:  func() (Result, error) { got = append(got, "theme"); return Result{}, nil },
		Filter: func(FilterArgs) (Result, error) { got = append(got, "filter"); return Result{}, nil },
		Rename: func(RenameArgs) (Result, error) { got = append(got, "rename"); return Result{}, nil },
	}
	for _, in := range []string{"toggle 1", "delete 1", "clear", "theme", "filter all", "rename 1 x"} {
		cmd, err := Parse(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if _, err := Execute(cmd, handlers); err != nil {
			t.Fatalf("execute %q: %v", in, err)
		}
	}
	want := []string{"toggle", "delete", "clear", "theme", "filter", "rename"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dispatch order = %v, want %v", got, want)
		}
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("clear")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
