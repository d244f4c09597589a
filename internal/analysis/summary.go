package analysis

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/ies-diagnostics/internal/dimensions"
)

var strengthPhrases = map[dimensions.ID]string{
	dimensions.ConscienciaInterior: "a clareza com que percebe seus pensamentos e emoções",
	dimensions.CoerenciaEmocional:  "a capacidade de manter o equilíbrio diante dos desafios",
	dimensions.ConexaoProposito:    "um senso de propósito claro que orienta suas escolhas",
	dimensions.RelacoesCompaixao:   "a qualidade dos seus vínculos e a empatia com que se relaciona",
	dimensions.Transformacao:       "a abertura para aprender e se transformar com as experiências",
}

var developmentPhrases = map[dimensions.ID]string{
	dimensions.ConscienciaInterior: "ampliar a escuta do próprio mundo interior",
	dimensions.CoerenciaEmocional:  "fortalecer a regulação das emoções em momentos de pressão",
	dimensions.ConexaoProposito:    "clarear valores e conectar o cotidiano a um propósito",
	dimensions.RelacoesCompaixao:   "cultivar relações mais próximas e uma compaixão com limites saudáveis",
	dimensions.Transformacao:       "transformar percepções em mudanças concretas de comportamento",
}

const summaryClosing = "Com prática consistente, cada dimensão pode ser fortalecida, e o plano de ação a seguir indica por onde começar."

// SummaryInput is what GenerateExecutiveSummary needs from a diagnostic
type SummaryInput struct {
	ParticipantName string
	TotalScore      float64
	DimensionScores []DimensionScore
}

func phraseFor(table map[dimensions.ID]string, name string) string {
	d, ok := dimensions.ByName(name)
	if !ok {
		return ""
	}
	return table[d.ID]
}

func firstName(fullName string) string {
	first, _, _ := strings.Cut(fullName, " ")
	return first
}

func summaryOpening(name string, total float64) string {
	badge := GetScoreLevelBadge(total)
	switch {
	case total >= 4:
		return fmt.Sprintf("%s, seu resultado geral (%.2f, %s) revela uma base sólida de inteligência emocional e espiritual.", name, total, badge.Label)
	case total >= 3:
		return fmt.Sprintf("%s, seu resultado geral (%.2f, %s) mostra recursos consistentes, com espaço claro para aprofundamento.", name, total, badge.Label)
	case total >= 2:
		return fmt.Sprintf("%s, seu resultado geral (%.2f, %s) indica um processo de desenvolvimento em andamento.", name, total, badge.Label)
	default:
		return fmt.Sprintf("%s, seu resultado geral (%.2f, %s) aponta um momento importante para cuidar de si e investir no autoconhecimento.", name, total, badge.Label)
	}
}

// GenerateExecutiveSummary composes the opening, strengths, development areas
// and closing sentences of the report. It requires at least two dimension
// scores and panics with fewer.
func GenerateExecutiveSummary(in SummaryInput) string {
	sorted := sortedCopy(in.DimensionScores, descendingByScore)
	n := len(sorted)

	top1, top2 := sorted[0], sorted[1]
	low1, low2 := sorted[n-1], sorted[n-2]

	strengths := fmt.Sprintf("Seus principais pontos fortes estão em %s e %s.",
		phraseFor(strengthPhrases, top1.Dimension), phraseFor(strengthPhrases, top2.Dimension))
	development := fmt.Sprintf("Como áreas de desenvolvimento, o convite é %s e %s.",
		phraseFor(developmentPhrases, low1.Dimension), phraseFor(developmentPhrases, low2.Dimension))

	return strings.Join([]string{
		summaryOpening(firstName(in.ParticipantName), in.TotalScore),
		strengths,
		development,
		summaryClosing,
	}, " ")
}
