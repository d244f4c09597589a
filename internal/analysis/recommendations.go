package analysis

import "github.com/ZanzyTHEbar/ies-diagnostics/internal/dimensions"

type recommendationContent struct {
	title       string
	description string
	practices   [4]string
}

var recommendations = map[dimensions.ID]recommendationContent{
	dimensions.ConscienciaInterior: {
		title:       "Cultive a auto-observação",
		description: "Fortalecer a consciência interior começa por dedicar atenção regular ao que acontece dentro de você, sem pressa de mudar ou julgar.",
		practices: [4]string{
			"Meditação diária de atenção plena por dez minutos",
			"Diário emocional ao final do dia",
			"Escaneamento corporal antes de dormir",
			"Pausas conscientes de um minuto entre tarefas",
		},
	},
	dimensions.CoerenciaEmocional: {
		title:       "Desenvolva a regulação emocional",
		description: "A coerência emocional cresce quando você cria espaço entre o que sente e como reage, usando o corpo e a respiração como aliados.",
		practices: [4]string{
			"Respiração de coerência cardíaca três vezes ao dia",
			"Nomear a emoção antes de responder",
			"Relaxamento muscular progressivo",
			"Frases de autocompaixão em momentos difíceis",
		},
	},
	dimensions.ConexaoProposito: {
		title:       "Conecte-se ao que importa",
		description: "Um propósito claro dá direção às escolhas. Investigue seus valores e leve-os para as pequenas decisões do dia.",
		practices: [4]string{
			"Definir os cinco valores centrais",
			"Intenção diária alinhada a um valor",
			"Prática de gratidão pela manhã",
			"Escrever uma declaração pessoal de propósito",
		},
	},
	dimensions.RelacoesCompaixao: {
		title:       "Aprofunde seus vínculos",
		description: "Relações saudáveis combinam presença, empatia e limites claros. A compaixão começa por você e se estende aos outros.",
		practices: [4]string{
			"Escuta ativa nas conversas do dia",
			"Meditação de bondade amorosa",
			"Um gesto intencional de gentileza por dia",
			"Estabelecer um limite saudável por semana",
		},
	},
	dimensions.Transformacao: {
		title:       "Abrace o crescimento contínuo",
		description: "A transformação acontece em pequenos passos. Trate cada desafio como um experimento e celebre o aprendizado.",
		practices: [4]string{
			"Registrar uma lição aprendida por dia",
			"Experimentar um microhábito por semana",
			"Questionar uma crença limitante",
			"Revisão mensal de progresso",
		},
	},
}

// GetRecommendationsForWeakDimensions returns the recommendation for each name
// that exactly matches a canonical dimension name. Other names are skipped, so
// callers holding slugs must normalize first.
func GetRecommendationsForWeakDimensions(names []string) []Recommendation {
	out := make([]Recommendation, 0, len(names))
	for _, name := range names {
		d, ok := dimensions.ByName(name)
		if !ok {
			continue
		}
		content, ok := recommendations[d.ID]
		if !ok {
			continue
		}
		out = append(out, Recommendation{
			Dimension:   d.Name,
			Title:       content.title,
			Description: content.description,
			Practices:   append([]string(nil), content.practices[:]...),
		})
	}
	return out
}
