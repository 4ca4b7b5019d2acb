package service

import (
	"context"
	"testing"

	"github.com/guildnet/board/internal/board/domain"
	"github.com/stretchr/testify/require"
)

// Full lifecycle walk: two profiles register and confirm, one subscribes and
// posts, the other responds, and the post's author moderates. Every step
// checks the notifications that should (and should not) exist.
func TestBoardWorkflow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)

	confirm := &ConfirmationService{Store: st}
	reg := &RegistrationService{Store: st, Confirm: confirm}
	subs := &SubscriptionService{Store: st, Confirm: confirm}
	posts := &PostService{Store: st, Confirm: confirm, Subscriptions: subs}
	mod := &ModerationService{Store: st, Confirm: confirm}
	cats := &CategoryService{Store: st}

	category, err := cats.EnsureCategory(ctx, "general")
	require.NoError(t, err)

	// 1. Both profiles register and confirm via their mailed codes.
	alice, err := reg.Register(ctx, "alice", "Alice", "alice@example.test", "a long password")
	require.NoError(t, err)
	bob, err := reg.Register(ctx, "bob", "Bob", "bob@example.test", "a long password")
	require.NoError(t, err)

	for _, p := range []domain.Profile{alice, bob} {
		var code string
		for _, n := range pendingByTemplate(t, st, domain.TemplateRegistrationConfirmation) {
			if n.Recipients[0] == p.Email {
				code = n.Data["code"]
			}
		}
		require.NotEmpty(t, code)
		require.NoError(t, confirm.SubmitCode(ctx, p.ID, code))
	}

	// 2. Bob subscribes, Alice posts; only Bob hears about it.
	_, err = subs.Subscribe(ctx, bob.ID, category.ID)
	require.NoError(t, err)

	post, err := posts.CreatePost(ctx, alice.ID, category.ID, "welcome", "hello board")
	require.NoError(t, err)

	fanOut := pendingByTemplate(t, st, domain.TemplateNewPost)
	require.Len(t, fanOut, 1)
	require.Equal(t, []string{bob.Email}, fanOut[0].Recipients)

	// 3. Bob responds; Alice is asked to moderate; nothing public yet.
	resp, err := mod.CreateResponse(ctx, bob.ID, post.ID, "glad to be here")
	require.NoError(t, err)

	review := pendingByTemplate(t, st, domain.TemplateNewResponse)
	require.Len(t, review, 1)
	require.Equal(t, []string{alice.Email}, review[0].Recipients)

	visible, err := mod.ListApproved(ctx, post.ID)
	require.NoError(t, err)
	require.Empty(t, visible)

	// 4. Alice approves; Bob is notified and the response goes public.
	_, err = mod.ApproveResponse(ctx, alice.ID, resp.ID)
	require.NoError(t, err)

	approvedMail := pendingByTemplate(t, st, domain.TemplateResponseApproved)
	require.Len(t, approvedMail, 1)
	require.Equal(t, []string{bob.Email}, approvedMail[0].Recipients)

	visible, err = mod.ListApproved(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	require.Equal(t, "glad to be here", visible[0].Content)
}
