package analysis

import "github.com/ZanzyTHEbar/ies-diagnostics/internal/dimensions"

type curriculumWeek struct {
	title      string
	objective  string
	practices  [3]Practice
	weeklyGoal string
}

func practices(morning, afternoon, evening string) [3]Practice {
	return [3]Practice{
		{TimeOfDay: "Manhã", Activity: morning},
		{TimeOfDay: "Tarde", Activity: afternoon},
		{TimeOfDay: "Noite", Activity: evening},
	}
}

var curricula = map[dimensions.ID][4]curriculumWeek{
	dimensions.ConscienciaInterior: {
		{
			title:      "Observar sem julgar",
			objective:  "Desenvolver o hábito de notar pensamentos e sensações ao longo do dia.",
			practices:  practices("Cinco minutos de respiração consciente ao acordar.", "Três pausas de um minuto para perceber o corpo.", "Registrar no diário três emoções sentidas no dia."),
			weeklyGoal: "Completar ao menos cinco dias de registro no diário.",
		},
		{
			title:      "Mapear padrões",
			objective:  "Reconhecer situações que disparam reações automáticas.",
			practices:  practices("Definir uma intenção de atenção para o dia.", "Anotar um momento de reação automática e o que a antecedeu.", "Revisar as anotações e circular os gatilhos recorrentes."),
			weeklyGoal: "Identificar três gatilhos que se repetem.",
		},
		{
			title:      "Corpo como sinal",
			objective:  "Usar as sensações corporais como indicadores do estado emocional.",
			practices:  practices("Escaneamento corporal de dez minutos.", "Perceber onde a tensão aparece durante reuniões ou tarefas.", "Alongamento lento observando as sensações."),
			weeklyGoal: "Associar duas emoções frequentes a sensações corporais específicas.",
		},
		{
			title:      "Presença integrada",
			objective:  "Levar a auto-observação para as interações do cotidiano.",
			practices:  practices("Meditação de quinze minutos com foco na respiração.", "Uma conversa por dia com atenção plena ao próprio estado.", "Carta para si mesmo sobre o que aprendeu no mês."),
			weeklyGoal: "Manter a prática diária por sete dias seguidos.",
		},
	},
	dimensions.CoerenciaEmocional: {
		{
			title:      "Nomear para acalmar",
			objective:  "Reduzir a intensidade emocional nomeando o que se sente.",
			practices:  practices("Check-in emocional com uma palavra ao acordar.", "Nomear a emoção em voz baixa diante de um desconforto.", "Respiração 4-7-8 antes de dormir."),
			weeklyGoal: "Nomear emoções em pelo menos dez situações difíceis.",
		},
		{
			title:      "A pausa entre estímulo e resposta",
			objective:  "Criar espaço antes de reagir.",
			practices:  practices("Ensaiar mentalmente uma situação desafiadora do dia.", "Aplicar a regra dos noventa segundos antes de responder.", "Revisar uma reação do dia e reescrever a resposta ideal."),
			weeklyGoal: "Aplicar a pausa conscientemente em cinco situações.",
		},
		{
			title:      "Coerência cardíaca",
			objective:  "Treinar o ritmo respiratório que favorece o equilíbrio.",
			practices:  practices("Cinco minutos de respiração ritmada (cinco segundos inspirando, cinco expirando).", "Repetir a respiração ritmada antes de uma tarefa exigente.", "Relaxamento muscular progressivo."),
			weeklyGoal: "Praticar coerência cardíaca três vezes ao dia em cinco dias.",
		},
		{
			title:      "Autocompaixão na dificuldade",
			objective:  "Responder aos próprios erros com gentileza em vez de crítica.",
			practices:  practices("Frase de autocompaixão ao iniciar o dia.", "Ao errar, perguntar o que diria a um amigo na mesma situação.", "Registrar um momento em que foi gentil consigo."),
			weeklyGoal: "Substituir a autocrítica por autocompaixão em três situações registradas.",
		},
	},
	dimensions.ConexaoProposito: {
		{
			title:      "Clarear valores",
			objective:  "Identificar os valores que orientam suas escolhas.",
			practices:  practices("Ler a lista de valores e escolher um para o dia.", "Observar uma decisão tomada à luz desse valor.", "Escrever sobre um momento de plenitude e os valores nele presentes."),
			weeklyGoal: "Definir os cinco valores centrais da sua vida.",
		},
		{
			title:      "Sentido no cotidiano",
			objective:  "Conectar tarefas comuns a algo que importa.",
			practices:  practices("Definir uma intenção significativa para o trabalho do dia.", "Perguntar a quem sua tarefa atual beneficia.", "Listar três momentos do dia que tiveram sentido."),
			weeklyGoal: "Relacionar as principais tarefas da semana a um valor.",
		},
		{
			title:      "Gratidão e pertencimento",
			objective:  "Fortalecer o vínculo com algo maior do que si mesmo.",
			practices:  practices("Três gratidões ao acordar.", "Um momento de contemplação da natureza ou do entorno.", "Mensagem de agradecimento a alguém importante."),
			weeklyGoal: "Enviar ao menos três mensagens de gratidão.",
		},
		{
			title:      "Declaração de propósito",
			objective:  "Formular e testar uma declaração pessoal de propósito.",
			practices:  practices("Reler a declaração de propósito em rascunho.", "Escolher uma ação alinhada ao propósito e realizá-la.", "Refinar a declaração com base na experiência do dia."),
			weeklyGoal: "Concluir uma declaração de propósito de uma frase.",
		},
	},
	dimensions.RelacoesCompaixao: {
		{
			title:      "Escuta ativa",
			objective:  "Estar presente nas conversas sem pressa de responder.",
			practices:  practices("Intenção de escutar mais do que falar.", "Em uma conversa, resumir o que ouviu antes de opinar.", "Refletir sobre uma conversa em que se sentiu realmente presente."),
			weeklyGoal: "Praticar escuta ativa em sete conversas.",
		},
		{
			title:      "Empatia com limites",
			objective:  "Acolher o outro sem se perder nas emoções alheias.",
			practices:  practices("Verificar a própria energia antes de compromissos sociais.", "Validar o sentimento de alguém sem assumir o problema.", "Anotar onde foi preciso dizer não e como se sentiu."),
			weeklyGoal: "Estabelecer um limite saudável em uma relação.",
		},
		{
			title:      "Bondade amorosa",
			objective:  "Cultivar compaixão por si, por pessoas próximas e por desconhecidos.",
			practices:  practices("Meditação de bondade amorosa por dez minutos.", "Um gesto gentil e anônimo.", "Desejar bem a alguém com quem há conflito."),
			weeklyGoal: "Realizar cinco gestos intencionais de gentileza.",
		},
		{
			title:      "Reparar e aproximar",
			objective:  "Fortalecer vínculos importantes e reparar rupturas.",
			practices:  practices("Escolher uma relação para dedicar atenção na semana.", "Marcar um encontro ou ligação com essa pessoa.", "Escrever o que gostaria de reconhecer nessa relação."),
			weeklyGoal: "Ter uma conversa de reaproximação ou reconhecimento.",
		},
	},
	dimensions.Transformacao: {
		{
			title:      "Mentalidade de aprendizado",
			objective:  "Enxergar desafios como oportunidades de crescimento.",
			practices:  practices("Perguntar o que o dia pode ensinar.", "Reformular uma dificuldade como experimento.", "Registrar uma lição aprendida."),
			weeklyGoal: "Registrar sete lições aprendidas.",
		},
		{
			title:      "Pequenos experimentos",
			objective:  "Testar mudanças de comportamento em pequena escala.",
			practices:  practices("Escolher um microhábito para experimentar.", "Executar o microhábito no mesmo horário.", "Avaliar o experimento de zero a dez."),
			weeklyGoal: "Manter um microhábito por cinco dias.",
		},
		{
			title:      "Soltar o que não serve",
			objective:  "Identificar crenças e hábitos que impedem o crescimento.",
			practices:  practices("Escrever uma crença limitante e questioná-la.", "Observar quando essa crença aparece nas decisões.", "Ritual simbólico de desapego, como escrever e descartar."),
			weeklyGoal: "Substituir uma crença limitante por uma alternativa fortalecedora.",
		},
		{
			title:      "Integrar a mudança",
			objective:  "Consolidar as transformações do mês e planejar a continuidade.",
			practices:  practices("Revisar o progresso das últimas semanas.", "Compartilhar uma mudança com alguém de confiança.", "Planejar o próximo ciclo de crescimento."),
			weeklyGoal: "Definir o foco de desenvolvimento para o próximo mês.",
		},
	},
}
