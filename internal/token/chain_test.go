package token_test

import (
	"errors"
	"testing"

	"github.com/avelys/guestpass/internal/token"
	"github.com/avelys/guestpass/internal/webserver/infrastructure"
	"github.com/avelys/guestpass/internal/webserver/model"
)

func testChain(t *testing.T, cfg token.Config) (*token.Issuer, *token.Chain) {
	t.Helper()

	db := infrastructure.Connect(":memory:")
	repository := &model.TokenRepository{DB: db}
	issuer := token.NewIssuer(repository, cfg)
	return issuer, token.NewChain(issuer, repository, &infrastructure.NoEmail{}, cfg)
}

func forwarder() token.Party {
	return token.Party{Name: "Ana", Email: "ana@example.com"}
}

func recipient(name string) token.Party {
	return token.Party{Name: name, Email: name + "@example.com"}
}

func TestForward(t *testing.T) {
	issuer, chain := testChain(t, testConfig())

	root, err := issuer.Create("list-1", model.KindShare, "", 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	child, err := chain.Forward(root.Secret, forwarder(), recipient("berta"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if child.Token.Depth != 1 {
		t.Errorf("Expected depth 1, got %d", child.Token.Depth)
	}
	if child.Token.ParentID == nil || *child.Token.ParentID != root.Token.ID {
		t.Error("Expected child to point at its parent")
	}
	if child.Token.SubjectUUID != root.Token.SubjectUUID {
		t.Error("Expected forwarding to keep the subject; access must never widen")
	}
	if child.Token.Kind != model.KindShare {
		t.Errorf("Expected kind share, got %s", child.Token.Kind)
	}
	if !child.Token.ExpiresAt.After(child.Token.CreatedAt) {
		t.Error("Expected a fresh validity window on the child")
	}

	if _, err := issuer.Validate(child.Secret); err != nil {
		t.Errorf("Expected the child secret to resolve, got %v", err)
	}
}

func TestForwardDepthLimit(t *testing.T) {
	issuer, chain := testChain(t, testConfig())

	issued, err := issuer.Create("list-1", model.KindShare, "", 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// T0 (depth 0) through T5 (depth 5) with maxDepth=5 must all work; the
	// forward out of T5 is the first one to fail.
	for depth := 1; depth <= 5; depth++ {
		issued, err = chain.Forward(issued.Secret, forwarder(), recipient("guest"))
		if err != nil {
			t.Fatalf("Unexpected error at depth %d: %v", depth, err)
		}
		if issued.Token.Depth != depth {
			t.Errorf("Expected depth %d, got %d", depth, issued.Token.Depth)
		}
	}

	if _, err := chain.Forward(issued.Secret, forwarder(), recipient("guest")); !errors.Is(err, token.ErrDepthExceeded) {
		t.Errorf("Expected ErrDepthExceeded, got %v", err)
	}
}

func TestForwardFanOutLimit(t *testing.T) {
	cfg := testConfig()
	cfg.MaxChildren = 2
	issuer, chain := testChain(t, cfg)

	root, err := issuer.Create("list-1", model.KindShare, "", 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := chain.Forward(root.Secret, forwarder(), recipient("guest")); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	if _, err := chain.Forward(root.Secret, forwarder(), recipient("guest")); !errors.Is(err, token.ErrFanOutExceeded) {
		t.Errorf("Expected ErrFanOutExceeded, got %v", err)
	}
}

func TestForwardRevokedParent(t *testing.T) {
	issuer, chain := testChain(t, testConfig())

	root, err := issuer.Create("list-1", model.KindShare, "", 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	child, err := chain.Forward(root.Secret, forwarder(), recipient("berta"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := issuer.Revoke(root.Token.UUID); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := chain.Forward(root.Secret, forwarder(), recipient("carla")); !errors.Is(err, token.ErrRevoked) {
		t.Errorf("Expected ErrRevoked, got %v", err)
	}

	// The child carries its own revocation flag and must stay resolvable.
	if _, err := issuer.Validate(child.Secret); err != nil {
		t.Errorf("Expected the child to survive the parent's revocation, got %v", err)
	}
}
