//go:build unit

package document_test

import (
	"testing"

	"lookup-service/internal/domain/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name  string
	raw   string
	want  string
	errIs error
}

func TestParse(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "素の11桁OK", raw: "52998224725", want: "52998224725"},
			{name: "別の有効な番号OK", raw: "11144477735", want: "11144477735"},
			{name: "書式付き入力は正規化される", raw: "529.982.247-25", want: "52998224725"},
			{name: "空白混じりも正規化される", raw: " 529 982 247 25 ", want: "52998224725"},
		})
	})

	t.Run("桁数検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "空文字NG", raw: "", errIs: document.ErrInvalidLength},
			{name: "10桁NG", raw: "5299822472", errIs: document.ErrInvalidLength},
			{name: "12桁NG", raw: "529982247255", errIs: document.ErrInvalidLength},
			{name: "数字以外のみNG", raw: "abc.def-ghi", errIs: document.ErrInvalidLength},
		})
	})

	t.Run("同一数字の拒否", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "全部1はNG", raw: "11111111111", errIs: document.ErrRepeatedDigits},
			{name: "全部0はNG", raw: "00000000000", errIs: document.ErrRepeatedDigits},
			{name: "全部9はNG", raw: "99999999999", errIs: document.ErrRepeatedDigits},
		})
	})

	t.Run("チェックディジット検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "末尾1桁違いNG", raw: "52998224724", errIs: document.ErrChecksum},
			{name: "dv1違いNG", raw: "52998224715", errIs: document.ErrChecksum},
			{name: "中間の桁違いNG", raw: "52998225725", errIs: document.ErrChecksum},
		})
	})
}

func TestMasked(t *testing.T) {
	n, err := document.Parse("52998224725")
	require.NoError(t, err)
	assert.Equal(t, "529*****725", n.Masked())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := document.Parse(tc.raw)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}
