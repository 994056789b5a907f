package frankie

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponse_Defaults(t *testing.T) {
	res := NewResponse()

	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "text/html", res.Headers["Content-Type"])
	assert.Nil(t, res.Body)
}

func TestContextApply(t *testing.T) {
	t.Run("nil leaves defaults", func(t *testing.T) {
		c := NewContext("GET", "/")
		require.NoError(t, c.apply(nil))
		assert.Equal(t, http.StatusOK, c.Status())
		assert.Nil(t, c.Body())
	})

	t.Run("string becomes body", func(t *testing.T) {
		c := NewContext("GET", "/")
		require.NoError(t, c.apply("hello"))
		assert.Equal(t, "hello", string(c.Body()))
		assert.Equal(t, http.StatusOK, c.Status())
	})

	t.Run("bytes become body", func(t *testing.T) {
		c := NewContext("GET", "/")
		require.NoError(t, c.apply([]byte{0xde, 0xad}))
		assert.Equal(t, []byte{0xde, 0xad}, c.Body())
	})

	t.Run("int becomes status", func(t *testing.T) {
		c := NewContext("GET", "/")
		require.NoError(t, c.apply(http.StatusNoContent))
		assert.Equal(t, http.StatusNoContent, c.Status())
		assert.Nil(t, c.Body())
	})

	t.Run("response merges onto context", func(t *testing.T) {
		c := NewContext("GET", "/")
		require.NoError(t, c.apply(&Response{
			Status:  http.StatusTeapot,
			Headers: map[string]string{"X-Pot": "short"},
			Body:    []byte("stout"),
		}))
		assert.Equal(t, http.StatusTeapot, c.Status())
		assert.Equal(t, "short", c.Header("X-Pot"))
		assert.Equal(t, "stout", string(c.Body()))
	})

	t.Run("partial response keeps prior state", func(t *testing.T) {
		c := NewContext("GET", "/")
		c.SetStatus(http.StatusCreated)
		c.SetBody([]byte("kept"))
		require.NoError(t, c.apply(&Response{Headers: map[string]string{"X-Extra": "1"}}))
		assert.Equal(t, http.StatusCreated, c.Status())
		assert.Equal(t, "kept", string(c.Body()))
		assert.Equal(t, "1", c.Header("X-Extra"))
	})

	t.Run("error is returned as failure", func(t *testing.T) {
		c := NewContext("GET", "/")
		boom := assert.AnError
		err := c.apply(boom)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("struct marshals to json", func(t *testing.T) {
		c := NewContext("GET", "/")
		require.NoError(t, c.apply(struct {
			Name string `json:"name"`
		}{Name: "frankie"}))
		assert.Equal(t, "application/json", c.Header("Content-Type"))
		assert.JSONEq(t, `{"name":"frankie"}`, string(c.Body()))
	})
}

func TestHalt(t *testing.T) {
	res := Halt(http.StatusUnauthorized, "nope")

	assert.Equal(t, http.StatusUnauthorized, res.Status)
	assert.Equal(t, "nope", string(res.Body))
}

func TestContext_Values(t *testing.T) {
	c := NewContext("GET", "/")

	assert.Nil(t, c.Get("user"))

	c.Set("user", "ada")
	assert.Equal(t, "ada", c.Get("user"))
	assert.Equal(t, "ada", c.MustGet("user"))

	assert.Panics(t, func() { c.MustGet("missing") })
}

func TestContext_JSONHelper(t *testing.T) {
	c := NewContext("GET", "/")

	require.NoError(t, c.JSON(http.StatusCreated, H{"ok": true}))
	assert.Equal(t, http.StatusCreated, c.Status())
	assert.Equal(t, "application/json", c.Header("Content-Type"))
	assert.JSONEq(t, `{"ok":true}`, string(c.Body()))
}
