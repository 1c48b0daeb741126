package main

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// supported lists the interface languages; the first is the fallback.
var supported = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

// Message keys double as the English text.
const (
	msgWelcome      = "Welcome to grayfx!\n"
	msgPromptPath   = "Enter the path of the image to edit\nfor example 'testdata/chess.png'\nPath: "
	msgLoaded       = "Image loaded successfully! (%d x %d)\n"
	msgPromptEffect = "Select the effect to apply:\n1 - Invert\n2 - Box blur\n3 - Sharpen\n4 - Edge detection\nChoice: "
	msgPromptSize   = "Enter the kernel size: "
	msgApplied      = "Applied %s in %v\n"
	msgSaved        = "Saved %s\n"
	msgPreview      = "Preview written to %s\n"
	msgStats        = "%s: mean %.2f, stddev %.2f, min %d, max %d\n"
	msgInput        = "input"
	msgOutput       = "output"
	msgHistogram    = "Intensity histogram"
	msgError        = "Error: %v\n"
)

var translations = map[string]string{
	msgWelcome:      "Bem-vindo ao grayfx!\n",
	msgPromptPath:   "Insira o caminho da imagem que deseja alterar\npor exemplo 'testdata/chess.png'\nCaminho: ",
	msgLoaded:       "Imagem carregada com sucesso! (%d x %d)\n",
	msgPromptEffect: "Selecione o efeito que gostaria de aplicar:\n1 - Inversão\n2 - Desfoque de caixa\n3 - Nitidez\n4 - Detecção de borda\nEscolha: ",
	msgPromptSize:   "Insira o tamanho desejado do kernel: ",
	msgApplied:      "%s aplicado em %v\n",
	msgSaved:        "%s salvo\n",
	msgPreview:      "Pré-visualização gravada em %s\n",
	msgStats:        "%s: média %.2f, desvio padrão %.2f, mín %d, máx %d\n",
	msgInput:        "entrada",
	msgOutput:       "saída",
	msgHistogram:    "Histograma de intensidade",
	msgError:        "Erro: %v\n",
}

func init() {
	for key, pt := range translations {
		_ = message.SetString(language.English, key, key)
		_ = message.SetString(language.BrazilianPortuguese, key, pt)
	}
}

// newPrinter returns a printer for the closest supported language to lang.
// Unknown or malformed tags fall back to English.
func newPrinter(lang string) *message.Printer {
	return message.NewPrinter(matchLanguage(lang))
}

func matchLanguage(lang string) language.Tag {
	t, err := language.Parse(lang)
	if err != nil {
		return supported[0]
	}
	_, i, conf := matcher.Match(t)
	if conf == language.No {
		return supported[0]
	}
	return supported[i]
}
