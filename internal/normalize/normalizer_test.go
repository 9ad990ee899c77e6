package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizer_Key(t *testing.T) {
	n := Default()

	tests := []struct {
		name       string
		descriptor string
		want       string
	}{
		{
			name:       "pix prefix standardized and date removed",
			descriptor: "PIX RECEBIDO JOAO SILVA 01/12/2024",
			want:       "pix_joao_silva",
		},
		{
			name:       "tail tokens sorted beyond position three",
			descriptor: "COMPRA CARTAO SUPERMERCADO ZAFFARI LTDA PORTO ALEGRE",
			want:       "compra_supermercado_zaffari_alegre_porto",
		},
		{
			name:       "authorization codes and timestamps removed",
			descriptor: "NETFLIX.COM NSU 123456 AUT 9921 14:32",
			want:       "netflix",
		},
		{
			name:       "com dropped as a function word",
			descriptor: "ARROZ COM FEIJAO RESTAURANTE",
			want:       "arroz_feijao_restaurante",
		},
		{
			name:       "diacritics folded",
			descriptor: "FARMÁCIA SÃO JOÃO",
			want:       "farmacia_sao_joao",
		},
		{
			name:       "stopwords and corporate suffixes dropped",
			descriptor: "PADARIA DO ZE LTDA",
			want:       "padaria_ze",
		},
		{
			name:       "empty input",
			descriptor: "",
			want:       "",
		},
		{
			name:       "whitespace only",
			descriptor: "   \t  ",
			want:       "",
		},
		{
			name:       "pure noise degrades to empty key",
			descriptor: "123456789 01/12/2024 ****",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Key(tt.descriptor))
		})
	}
}

func TestNormalizer_KeyTokens(t *testing.T) {
	n := Default()

	// tokens keep descriptor order; the key sorts only beyond position three
	toks := n.KeyTokens("COMPRA CARTAO SUPERMERCADO ZAFFARI LTDA PORTO ALEGRE")
	assert.Equal(t, []string{"COMPRA", "SUPERMERCADO", "ZAFFARI", "PORTO", "ALEGRE"}, toks)
	assert.Equal(t, "compra_supermercado_zaffari_alegre_porto", n.Key("COMPRA CARTAO SUPERMERCADO ZAFFARI LTDA PORTO ALEGRE"))

	assert.Nil(t, n.KeyTokens(""))
	assert.Nil(t, n.KeyTokens("123456789 01/12/2024"))
}

func TestNormalizer_KeyDeterminism(t *testing.T) {
	n := Default()

	descriptors := []string{
		"PIX RECEBIDO JOAO SILVA 01/12/2024",
		"PAG*RESTAURANTE XYZ 123456",
		"DEBITO AUTOMATICO VIVO FIBRA NSU 998877",
		"ÀÉÎÕÜ çãê descrição qualquer",
	}

	for _, d := range descriptors {
		first := n.Key(d)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, n.Key(d), "key must be deterministic for %q", d)
		}
	}
}

func TestNormalizer_KeyBounds(t *testing.T) {
	n := Default()

	long := strings.Repeat("SUPERMERCADO ", 40)
	key := n.Key(long)
	assert.LessOrEqual(t, len(key), 100)

	// at most five tokens survive
	many := "ALFA BRAVO CHARLIE DELTA ECHO FOXTROT GOLF HOTEL"
	assert.Equal(t, 5, len(strings.Split(n.Key(many), "_")))
}

func TestNormalizer_MerchantName(t *testing.T) {
	n := Default()

	tests := []struct {
		name       string
		descriptor string
		want       string
	}{
		{
			name:       "prefix stripped without code",
			descriptor: "PIX RECEBIDO JOAO SILVA 01/12/2024",
			want:       "JOAO SILVA",
		},
		{
			name:       "keeps at most four tokens",
			descriptor: "ALFA BRAVO CHARLIE DELTA ECHO FOXTROT",
			want:       "ALFA BRAVO CHARLIE DELTA",
		},
		{
			name:       "falls back to raw text when nothing survives",
			descriptor: "12 34 56",
			want:       "12 34 56",
		},
		{
			name:       "empty input",
			descriptor: "",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.MerchantName(tt.descriptor))
		})
	}
}

func TestNormalizer_MerchantNameRawFallbackTruncates(t *testing.T) {
	n := Default()

	raw := strings.Repeat("1", 45) // numeric only, nothing survives
	got := n.MerchantName(raw)
	assert.Len(t, got, 30)
	assert.True(t, strings.HasPrefix(raw, got))
}
