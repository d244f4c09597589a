package disc

type profileEntry struct {
	label       string
	description string
}

func (e profileEntry) profile(code, primary, secondary string) Profile {
	return Profile{
		Code:        code,
		Primary:     primary,
		Secondary:   secondary,
		Label:       e.label,
		Description: e.description,
	}
}

var profiles = map[string]profileEntry{
	"DD": {"Executor", "Direto, decidido e orientado a resultados. Assume o comando com naturalidade e prefere agir a deliberar."},
	"DI": {"Desbravador", "Combina firmeza e entusiasmo. Mobiliza pessoas em torno de metas ambiciosas e gosta de abrir caminhos."},
	"DS": {"Realizador persistente", "Determinado e constante. Persegue objetivos com foco e sustenta o esforço até a conclusão."},
	"DC": {"Estrategista", "Exigente e analítico. Toma decisões rápidas apoiadas em critérios e padrões elevados."},
	"ID": {"Persuasor", "Comunicativo e assertivo. Convence pelo entusiasmo e não hesita em tomar a frente."},
	"II": {"Comunicador", "Sociável, otimista e expressivo. Energiza ambientes e constrói redes de relacionamento com facilidade."},
	"IS": {"Conselheiro", "Caloroso e acolhedor. Inspira confiança e cria vínculos duradouros com as pessoas ao redor."},
	"IC": {"Avaliador criativo", "Expressivo e atento aos detalhes. Une ideias novas a uma preocupação com qualidade."},
	"SD": {"Especialista confiável", "Calmo e firme. Mantém o ritmo e entrega com consistência, mesmo sob pressão."},
	"SI": {"Apoiador", "Paciente e amigável. Valoriza a harmonia do grupo e oferece suporte genuíno aos outros."},
	"SS": {"Planejador", "Estável, leal e previsível. Prefere ambientes seguros e mudanças graduais."},
	"SC": {"Mantenedor", "Metódico e cooperativo. Segue processos com cuidado e garante a continuidade do trabalho."},
	"CD": {"Perfeccionista exigente", "Rigoroso e objetivo. Busca precisão e não abre mão de padrões, mesmo que precise confrontar."},
	"CI": {"Analista diplomático", "Preciso e cordial. Apresenta dados com clareza e sabe conquistar adesão às suas análises."},
	"CS": {"Técnico cuidadoso", "Sistemático e paciente. Trabalha com profundidade e evita riscos desnecessários."},
	"CC": {"Analista", "Lógico, cauteloso e orientado à qualidade. Decide com base em fatos e valoriza a exatidão."},
}
