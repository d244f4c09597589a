package dimensions

// ID identifies one of the five diagnostic dimensions. The numeric value is
// also the display order.
type ID int

const (
	ConscienciaInterior ID = iota + 1
	CoerenciaEmocional
	ConexaoProposito
	RelacoesCompaixao
	Transformacao
)

// Dimension describes a measured category of the instrument
type Dimension struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// LikertLabel is one point of the 1..5 agreement scale
type LikertLabel struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// MaxScore is the top of the Likert scale
const MaxScore = 5.0

var registry = []Dimension{
	{
		ID:          ConscienciaInterior,
		Name:        "Consciência Interior",
		Slug:        "consciencia_interior",
		Description: "Capacidade de perceber pensamentos, emoções e sensações corporais com clareza e sem julgamento.",
		Icon:        "eye",
	},
	{
		ID:          CoerenciaEmocional,
		Name:        "Coerência Emocional",
		Slug:        "coerencia_emocional",
		Description: "Habilidade de regular as próprias emoções e responder aos desafios com equilíbrio.",
		Icon:        "heart",
	},
	{
		ID:          ConexaoProposito,
		Name:        "Conexão e Propósito",
		Slug:        "conexao_proposito",
		Description: "Senso de sentido, valores claros e conexão com algo maior do que si mesmo.",
		Icon:        "compass",
	},
	{
		ID:          RelacoesCompaixao,
		Name:        "Relações e Compaixão",
		Slug:        "relacoes_compaixao",
		Description: "Qualidade dos vínculos, empatia e capacidade de cuidar de si e dos outros.",
		Icon:        "users",
	},
	{
		ID:          Transformacao,
		Name:        "Transformação",
		Slug:        "transformacao_crescimento",
		Description: "Abertura à mudança, aprendizado com a experiência e crescimento contínuo.",
		Icon:        "sprout",
	},
}

var likertLabels = []LikertLabel{
	{Value: 1, Label: "Discordo totalmente"},
	{Value: 2, Label: "Discordo parcialmente"},
	{Value: 3, Label: "Neutro"},
	{Value: 4, Label: "Concordo parcialmente"},
	{Value: 5, Label: "Concordo totalmente"},
}

// All returns the dimensions ordered by ID. The returned slice is a copy.
func All() []Dimension {
	out := make([]Dimension, len(registry))
	copy(out, registry)
	return out
}

// Get returns the dimension for an ID
func Get(id ID) (Dimension, bool) {
	if id < ConscienciaInterior || int(id) > len(registry) {
		return Dimension{}, false
	}
	return registry[id-1], true
}

// ByName looks up a dimension by its exact canonical display name. No
// normalization is applied: slugs and variant spellings miss.
func ByName(name string) (Dimension, bool) {
	for _, d := range registry {
		if d.Name == name {
			return d, true
		}
	}
	return Dimension{}, false
}

// Name returns the canonical display name for an ID, or "" if unknown.
func (id ID) Name() string {
	d, ok := Get(id)
	if !ok {
		return ""
	}
	return d.Name
}

// LikertLabels returns the fixed 5-point label set
func LikertLabels() []LikertLabel {
	out := make([]LikertLabel, len(likertLabels))
	copy(out, likertLabels)
	return out
}
