package authctx_test

import (
	"context"
	"testing"

	"github.com/authware/idtoken/authctx"
)

type user struct {
	ID string
}

func TestSetGet(t *testing.T) {
	ctx := authctx.Set(context.Background(), authctx.Identity{
		Principal: &user{ID: "1"},
		Subject:   "sub-1",
		Claims:    map[string]any{"sub": "sub-1"},
	})

	id, ok := authctx.Get(ctx)
	if !ok {
		t.Fatal("expected identity in context")
	}
	if id.Subject != "sub-1" {
		t.Fatalf("unexpected subject: %q", id.Subject)
	}

	u, ok := authctx.Principal[*user](ctx)
	if !ok || u.ID != "1" {
		t.Fatalf("unexpected principal: %#v", u)
	}
}

func TestGet_Empty(t *testing.T) {
	if _, ok := authctx.Get(context.Background()); ok {
		t.Fatal("expected no identity in empty context")
	}
	if _, err := authctx.GetOrError(context.Background()); err != authctx.ErrNoIdentity {
		t.Fatalf("expected ErrNoIdentity, got %v", err)
	}
}

func TestPrincipal_WrongType(t *testing.T) {
	ctx := authctx.Set(context.Background(), authctx.Identity{Principal: &user{ID: "1"}})
	if _, ok := authctx.Principal[string](ctx); ok {
		t.Fatal("expected type mismatch to report absence")
	}
}

func TestMustPrincipal_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing principal")
		}
	}()
	authctx.MustPrincipal[*user](context.Background())
}
