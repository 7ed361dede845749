package services_test

import (
	"testing"

	"food_ordering/internal/repository"
	"food_ordering/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatAppendAndHistory(t *testing.T) {
	chat := services.NewChatService(repository.NewConversationRepository(newTestDB(t)))

	first, err := chat.Append("alice", "user", "I want a pizza")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = chat.Append("alice", "assistant", "Added Margherita to your cart")
	require.NoError(t, err)
	_, err = chat.Append("bob", "user", "show me the menu")
	require.NoError(t, err)

	history, err := chat.History("alice")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "assistant", history[1].Role)
}

func TestChatAppend_Validation(t *testing.T) {
	chat := services.NewChatService(repository.NewConversationRepository(newTestDB(t)))

	var vErr *services.ValidationError

	_, err := chat.Append("alice", "", "hello")
	assert.ErrorAs(t, err, &vErr)

	_, err = chat.Append("alice", "user", "  ")
	assert.ErrorAs(t, err, &vErr)
}
