package analysis

import "github.com/ZanzyTHEbar/ies-diagnostics/internal/dimensions"

// Cross-analysis thresholds. crossLowThreshold is deliberately not the
// interpreter's 2.5 boundary.
const (
	crossHighThreshold = 3.5
	crossLowThreshold  = 2.8
)

// crossRule fires when high scores at least crossHighThreshold and low scores
// below crossLowThreshold.
type crossRule struct {
	high           dimensions.ID
	low            dimensions.ID
	title          string
	narrative      string
	recommendation string
}

var crossRules = []crossRule{
	{
		high:           dimensions.ConscienciaInterior,
		low:            dimensions.CoerenciaEmocional,
		title:          "Percepção sem regulação",
		narrative:      "Você percebe com nitidez o que sente, mas essa clareza ainda não se traduz em estabilidade: as emoções são reconhecidas e, mesmo assim, conduzem as reações.",
		recommendation: "Use a percepção como ponto de partida para a pausa. Ao notar uma emoção intensa, respire por noventa segundos antes de agir e nomeie a necessidade por trás dela.",
	},
	{
		high:           dimensions.CoerenciaEmocional,
		low:            dimensions.ConscienciaInterior,
		title:          "Regulação sem raiz",
		narrative:      "Você mantém a calma com facilidade, mas o equilíbrio parece vir mais do controle do que da compreensão do que acontece por dentro. Emoções contidas podem ficar sem escuta.",
		recommendation: "Reserve momentos para investigar o que está sob a superfície. Um diário emocional curto ao fim do dia ajuda a transformar controle em autoconhecimento.",
	},
	{
		high:           dimensions.ConexaoProposito,
		low:            dimensions.CoerenciaEmocional,
		title:          "Propósito sem chão emocional",
		narrative:      "Há um senso claro de direção e de valores, mas as oscilações emocionais consomem a energia necessária para sustentar esse caminho no dia a dia.",
		recommendation: "Ancore o propósito em rituais de regulação: comece o dia com uma intenção ligada aos seus valores e encerre com uma prática de respiração ou relaxamento.",
	},
	{
		high:           dimensions.CoerenciaEmocional,
		low:            dimensions.ConexaoProposito,
		title:          "Estabilidade sem direção",
		narrative:      "Sua serenidade é um recurso valioso, mas falta um norte que dê sentido a ela. A estabilidade pode virar acomodação quando não está a serviço de algo importante.",
		recommendation: "Explore o que realmente importa para você: escreva sobre os momentos em que se sentiu mais vivo e identifique os valores presentes neles.",
	},
	{
		high:           dimensions.RelacoesCompaixao,
		low:            dimensions.CoerenciaEmocional,
		title:          "Empatia que esgota",
		narrative:      "Você se conecta profundamente com as pessoas, mas absorve as emoções alheias sem conseguir se reequilibrar, o que leva ao cansaço e à sobrecarga.",
		recommendation: "Pratique a compaixão com limites: antes de acolher alguém, verifique seu próprio estado e permita-se dizer não quando a reserva estiver baixa.",
	},
	{
		high:           dimensions.CoerenciaEmocional,
		low:            dimensions.RelacoesCompaixao,
		title:          "Equilíbrio solitário",
		narrative:      "Seu equilíbrio interno é consistente, mas tende a ser vivido de forma isolada. A estabilidade ainda não se converte em presença e cuidado nas relações.",
		recommendation: "Compartilhe sua calma com quem está próximo. Escolha uma conversa por dia para praticar a escuta ativa, sem pressa de resolver ou aconselhar.",
	},
	{
		high:           dimensions.ConscienciaInterior,
		low:            dimensions.Transformacao,
		title:          "Visão sem movimento",
		narrative:      "Você enxerga com clareza os próprios padrões, mas encontra dificuldade em transformar essa compreensão em mudança concreta de comportamento.",
		recommendation: "Converta cada percepção em um pequeno experimento prático. Escolha um hábito por semana e acompanhe o que muda quando você age diferente.",
	},
	{
		high:           dimensions.Transformacao,
		low:            dimensions.ConexaoProposito,
		title:          "Mudança sem bússola",
		narrative:      "Você está aberto ao novo e se transforma com facilidade, mas sem um propósito definido as mudanças podem se dispersar em muitas direções.",
		recommendation: "Antes de iniciar uma nova mudança, pergunte-se a que valor ela serve. Mantenha uma lista curta de prioridades e revise-a mensalmente.",
	},
	{
		high:           dimensions.ConexaoProposito,
		low:            dimensions.RelacoesCompaixao,
		title:          "Sentido sem vínculo",
		narrative:      "Seu propósito é forte, mas vivido de forma individual. As relações podem ficar em segundo plano diante da missão pessoal.",
		recommendation: "Inclua pessoas no seu propósito: identifique quem se beneficia do que você faz e busque colaboração em vez de caminhar sozinho.",
	},
	{
		high:           dimensions.RelacoesCompaixao,
		low:            dimensions.ConscienciaInterior,
		title:          "Cuidado sem autoconhecimento",
		narrative:      "Você dedica muita atenção aos outros, mas olha pouco para si. O cuidado com as pessoas pode estar ocupando o espaço da escuta interior.",
		recommendation: "Ofereça a si mesmo a mesma atenção que oferece aos outros. Dedique dez minutos diários a uma prática de auto-observação sem distrações.",
	},
}

// GetCrossAnalysisInsights evaluates every cross rule against scores and
// returns all matches in rule order. A dimension absent from scores never
// satisfies a rule.
func GetCrossAnalysisInsights(scores []DimensionScore) []CrossInsight {
	byName := make(map[string]float64, len(scores))
	for _, s := range scores {
		byName[s.Dimension] = s.Score
	}

	insights := make([]CrossInsight, 0)
	for _, rule := range crossRules {
		high, okHigh := byName[rule.high.Name()]
		low, okLow := byName[rule.low.Name()]
		if !okHigh || !okLow {
			continue
		}
		if high >= crossHighThreshold && low < crossLowThreshold {
			insights = append(insights, CrossInsight{
				Title:              rule.title,
				PrimaryDimension:   rule.high.Name(),
				SecondaryDimension: rule.low.Name(),
				Narrative:          rule.narrative,
				Recommendation:     rule.recommendation,
			})
		}
	}
	return insights
}
