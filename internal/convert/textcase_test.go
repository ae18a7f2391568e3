package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"HelloWorld", []string{"Hello", "World"}},
		{"helloWorldAgain", []string{"hello", "World", "Again"}},
		{"hello_world", []string{"hello", "world"}},
		{"foo-bar baz", []string{"foo", "bar", "baz"}},
		{"  __multiple--separators  ", []string{"multiple", "separators"}},
		{"HTTPServer", []string{"HTTPServer"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SplitWords(tt.input)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCaseConversions(t *testing.T) {
	assert.Equal(t, "hello_world", ToSnakeCase("HelloWorld"))
	assert.Equal(t, "helloWorld", ToCamelCase("hello_world"))
	assert.Equal(t, "foo-bar", ToKebabCase("fooBar"))
	assert.Equal(t, "HelloWorld", ToPascalCase("hello world"))
	assert.Equal(t, "HELLO_WORLD", ToConstantCase("hello-world"))
	assert.Equal(t, "Hello world", ToSentenceCase("hELLO WORLD"))
	assert.Equal(t, "Hello World", ToTitleCase("hELLO wORLD"))
	assert.Equal(t, "", ToCamelCase("   "))
}

func TestAllCases(t *testing.T) {
	got := AllCases("userAccount id")

	assert.Len(t, got, 9)
	assert.Equal(t, "useraccount id", got[LowerCase])
	assert.Equal(t, "USERACCOUNT ID", got[UpperCase])
	assert.Equal(t, "Useraccount Id", got[TitleCase])
	assert.Equal(t, "Useraccount id", got[SentenceCase])
	assert.Equal(t, "userAccountId", got[CamelCase])
	assert.Equal(t, "UserAccountId", got[PascalCase])
	assert.Equal(t, "user_account_id", got[SnakeCase])
	assert.Equal(t, "user-account-id", got[KebabCase])
	assert.Equal(t, "USER_ACCOUNT_ID", got[ConstantCase])
}
