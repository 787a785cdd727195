package content

type Tags struct {
	Roots      []Root     `json:"roots"`
	Categories []Category `json:"categories"`
}

func (t Tags) tags() Tags { return t }

type Scripture struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
	Text      string `json:"text"`
	Tags
}

type Prayer struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
	Tags
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type ActionType string

const (
	ActionSpiritual ActionType = "spiritual"
	ActionPractical ActionType = "practical"
	ActionCommunity ActionType = "community"
)

type Action struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	Type        ActionType `json:"type"`
	Tags
}

type Corpus struct {
	Scriptures []Scripture
	Prayers    []Prayer
	Actions    []Action
}

func tags(roots []Root, categories ...Category) Tags {
	return Tags{Roots: roots, Categories: categories}
}

// Default is the hand-curated corpus. Declaration order is the tie-break
// order of the matcher.
var Default = &Corpus{
	Scriptures: []Scripture{
		{
			ID:        "salmo-68-5-6",
			Reference: "Salmos 68:5-6",
			Text:      "Padre de huérfanos y defensor de viudas es Dios en su santa morada. Dios hace habitar en familia a los desamparados.",
			Tags:      tags([]Root{RootPapaAusente, RootDivorcioPadres}, CategoryFamily),
		},
		{
			ID:        "santiago-4-8",
			Reference: "Santiago 4:8",
			Text:      "Acercaos a Dios, y él se acercará a vosotros.",
			Tags:      tags([]Root{RootFaltaIntimidadDios, RootSequiaEspiritual}, CategorySpiritual),
		},
		{
			ID:        "salmo-27-10",
			Reference: "Salmos 27:10",
			Text:      "Aunque mi padre y mi madre me dejaran, con todo, Jehová me recogerá.",
			Tags:      tags([]Root{RootRechazoPropio, RootConflictoFamiliar}, CategoryFamily, CategoryIdentity),
		},
		{
			ID:        "1juan-1-9",
			Reference: "1 Juan 1:9",
			Text:      "Si confesamos nuestros pecados, él es fiel y justo para perdonar nuestros pecados, y limpiarnos de toda maldad.",
			Tags:      tags([]Root{RootFaltaConfesion}, CategorySpiritual),
		},
		{
			ID:        "efesios-4-32",
			Reference: "Efesios 4:32",
			Text:      "Antes sed benignos unos con otros, misericordiosos, perdonándoos unos a otros, como Dios también os perdonó a vosotros en Cristo.",
			Tags:      tags([]Root{RootFaltaPerdon, RootConflictoFamiliar}, CategorySpiritual, CategoryRelationships),
		},
		{
			ID:        "salmo-119-105",
			Reference: "Salmos 119:105",
			Text:      "Lámpara es a mis pies tu palabra, y lumbrera a mi camino.",
			Tags:      tags([]Root{RootBibliaDescuidada}, CategorySpiritual),
		},
		{
			ID:        "ezequiel-36-26",
			Reference: "Ezequiel 36:26",
			Text:      "Os daré corazón nuevo, y pondré espíritu nuevo dentro de vosotros; y quitaré de vuestra carne el corazón de piedra.",
			Tags:      tags([]Root{RootCorazonEndurecido, RootRebeldia}, CategorySpiritual),
		},
		{
			ID:        "santiago-4-6",
			Reference: "Santiago 4:6",
			Text:      "Dios resiste a los soberbios, y da gracia a los humildes.",
			Tags:      tags([]Root{RootOrgullo}, CategorySpiritual),
		},
		{
			ID:        "efesios-2-10",
			Reference: "Efesios 2:10",
			Text:      "Porque somos hechura suya, creados en Cristo Jesús para buenas obras.",
			Tags:      tags([]Root{RootIdentidadConfusa, RootBajaAutoestima}, CategoryIdentity),
		},
		{
			ID:        "salmo-139-14",
			Reference: "Salmos 139:14",
			Text:      "Te alabaré; porque formidables, maravillosas son tus obras; estoy maravillado, y mi alma lo sabe muy bien.",
			Tags:      tags([]Root{RootBajaAutoestima, RootRechazoPropio}, CategoryIdentity),
		},
		{
			ID:        "galatas-1-10",
			Reference: "Gálatas 1:10",
			Text:      "¿Busco ahora el favor de los hombres, o el de Dios? ¿O trato de agradar a los hombres?",
			Tags:      tags([]Root{RootBusquedaAprobacion}, CategoryIdentity, CategoryRelationships),
		},
		{
			ID:        "salmo-34-18",
			Reference: "Salmos 34:18",
			Text:      "Cercano está Jehová a los quebrantados de corazón; y salva a los contritos de espíritu.",
			Tags:      tags([]Root{RootPerdidaDuelo, RootRupturaAmorosa, RootAbusoInfancia}, CategoryTrauma),
		},
		{
			ID:        "isaias-61-1",
			Reference: "Isaías 61:1",
			Text:      "Me ha enviado a predicar buenas nuevas a los abatidos, a vendar a los quebrantados de corazón.",
			Tags:      tags([]Root{RootAbusoInfancia, RootTraumaSexual}, CategoryTrauma),
		},
		{
			ID:        "filipenses-4-6-7",
			Reference: "Filipenses 4:6-7",
			Text:      "Por nada estéis afanosos, sino sean conocidas vuestras peticiones delante de Dios en toda oración y ruego, con acción de gracias.",
			Tags:      tags([]Root{RootAnsiedad, RootEstresCronico}, CategoryMental),
		},
		{
			ID:        "salmo-42-11",
			Reference: "Salmos 42:11",
			Text:      "¿Por qué te abates, oh alma mía, y por qué te turbas dentro de mí? Espera en Dios.",
			Tags:      tags([]Root{RootDepresion}, CategoryMental),
		},
		{
			ID:        "proverbios-13-20",
			Reference: "Proverbios 13:20",
			Text:      "El que anda con sabios, sabio será; mas el que se junta con necios será quebrantado.",
			Tags:      tags([]Root{RootAmistadesToxicas}, CategoryRelationships),
		},
		{
			ID:        "hebreos-10-24-25",
			Reference: "Hebreos 10:24-25",
			Text:      "Y considerémonos unos a otros para estimularnos al amor y a las buenas obras; no dejando de congregarnos.",
			Tags:      tags([]Root{RootSoledad, RootFaltaRendicionCuenta}, CategoryRelationships),
		},
		{
			ID:        "1corintios-10-13",
			Reference: "1 Corintios 10:13",
			Text:      "No os ha sobrevenido ninguna tentación que no sea humana; pero fiel es Dios, que no os dejará ser tentados más de lo que podéis resistir.",
			Tags:      tags([]Root{RootHabitosArraigados, RootExposicionContenido}, CategoryBehavior),
		},
		{
			ID:        "filipenses-4-8",
			Reference: "Filipenses 4:8",
			Text:      "Todo lo que es verdadero, todo lo honesto, todo lo justo, todo lo puro, en esto pensad.",
			Tags:      tags([]Root{RootExposicionContenido, RootAburrimiento}, CategoryBehavior, CategoryMental),
		},
	},
	Prayers: []Prayer{
		{
			ID:    "oracion-intimidad",
			Title: "Oración para volver a la presencia de Dios",
			Text:  "Señor, quiero conocerte de nuevo. Aviva en mí el deseo de tu palabra y de tu presencia.",
			Tags:  tags([]Root{RootFaltaIntimidadDios, RootSequiaEspiritual, RootBibliaDescuidada}, CategorySpiritual),
		},
		{
			ID:    "oracion-padre",
			Title: "Oración por el corazón de hijo",
			Text:  "Padre, sana lo que mi familia no pudo darme y enséñame a recibir tu amor de Padre.",
			Tags:  tags([]Root{RootPapaAusente, RootMamaControladora, RootDivorcioPadres, RootConflictoFamiliar}, CategoryFamily),
		},
		{
			ID:    "oracion-perdon",
			Title: "Oración de confesión y perdón",
			Text:  "Señor, confieso mi pecado delante de ti y decido perdonar a quien me ha herido.",
			Tags:  tags([]Root{RootFaltaPerdon, RootFaltaConfesion}, CategorySpiritual, CategoryRelationships),
		},
		{
			ID:    "oracion-identidad",
			Title: "Oración por mi identidad",
			Text:  "Dios, recuérdame quién soy en ti. Que tu voz pese más que la opinión de los demás.",
			Tags:  tags([]Root{RootIdentidadConfusa, RootBajaAutoestima, RootRechazoPropio, RootBusquedaAprobacion}, CategoryIdentity),
		},
		{
			ID:    "oracion-sanidad",
			Title: "Oración por sanidad interior",
			Text:  "Jesús, entra en los recuerdos que duelen y trae tu consuelo donde hubo daño.",
			Tags:  tags([]Root{RootAbusoInfancia, RootTraumaSexual, RootPerdidaDuelo}, CategoryTrauma),
		},
		{
			ID:    "oracion-paz",
			Title: "Oración por paz",
			Text:  "Señor, entrego mis cargas y mis pensamientos. Guarda mi mente con tu paz.",
			Tags:  tags([]Root{RootAnsiedad, RootDepresion, RootEstresCronico}, CategoryMental),
		},
		{
			ID:    "oracion-humildad",
			Title: "Oración por un corazón humilde",
			Text:  "Dios, quebranta mi orgullo y dame un corazón dispuesto a obedecerte.",
			Tags:  tags([]Root{RootOrgullo, RootRebeldia, RootCorazonEndurecido}, CategorySpiritual),
		},
		{
			ID:    "oracion-libertad",
			Title: "Oración por libertad",
			Text:  "Señor, rompe las cadenas de mis hábitos y llena mis horas con lo que te agrada.",
			Tags:  tags([]Root{RootHabitosArraigados, RootExposicionContenido, RootAburrimiento}, CategoryBehavior),
		},
		{
			ID:    "oracion-amistad",
			Title: "Oración por relaciones sanas",
			Text:  "Padre, dame amigos que me acerquen a ti y sana las heridas de mis relaciones.",
			Tags:  tags([]Root{RootSoledad, RootAmistadesToxicas, RootRupturaAmorosa}, CategoryRelationships),
		},
	},
	Actions: []Action{
		{
			ID:          "devocional-diario",
			Title:       "Devocional diario de 10 minutos",
			Description: "Aparta diez minutos cada mañana para leer un pasaje y orar por lo que leíste.",
			Difficulty:  DifficultyEasy,
			Type:        ActionSpiritual,
			Tags:        tags([]Root{RootFaltaIntimidadDios, RootBibliaDescuidada, RootSequiaEspiritual}, CategorySpiritual),
		},
		{
			ID:          "plan-lectura",
			Title:       "Plan de lectura bíblica",
			Description: "Elige un plan de lectura de 30 días y registra cada día lo que aprendiste.",
			Difficulty:  DifficultyMedium,
			Type:        ActionSpiritual,
			Tags:        tags([]Root{RootBibliaDescuidada}, CategorySpiritual),
		},
		{
			ID:          "carta-padre",
			Title:       "Carta a tu papá",
			Description: "Escribe una carta, sin enviarla, contando lo que te faltó y lo que decides perdonar.",
			Difficulty:  DifficultyMedium,
			Type:        ActionPractical,
			Tags:        tags([]Root{RootPapaAusente, RootDivorcioPadres}, CategoryFamily, CategoryTrauma),
		},
		{
			ID:          "confesion-lider",
			Title:       "Confesar a tu líder",
			Description: "Comparte con tu líder lo que has mantenido en secreto y oren juntos.",
			Difficulty:  DifficultyHard,
			Type:        ActionCommunity,
			Tags:        tags([]Root{RootFaltaConfesion, RootFaltaRendicionCuenta}, CategorySpiritual, CategoryBehavior),
		},
		{
			ID:          "lista-perdon",
			Title:       "Lista de perdón",
			Description: "Haz una lista de las personas que te hirieron y ora por cada una de ellas.",
			Difficulty:  DifficultyMedium,
			Type:        ActionSpiritual,
			Tags:        tags([]Root{RootFaltaPerdon}, CategorySpiritual, CategoryRelationships),
		},
		{
			ID:          "verdades-identidad",
			Title:       "Cinco verdades sobre tu identidad",
			Description: "Escribe cinco versículos sobre quién eres en Cristo y léelos en voz alta cada día.",
			Difficulty:  DifficultyEasy,
			Type:        ActionSpiritual,
			Tags:        tags([]Root{RootIdentidadConfusa, RootBajaAutoestima, RootRechazoPropio}, CategoryIdentity),
		},
		{
			ID:          "grupo-pequeno",
			Title:       "Unirte a un grupo pequeño",
			Description: "Busca un grupo de tu iglesia y asiste a las próximas tres reuniones.",
			Difficulty:  DifficultyMedium,
			Type:        ActionCommunity,
			Tags:        tags([]Root{RootSoledad, RootAmistadesToxicas}, CategoryRelationships),
		},
		{
			ID:          "respiracion-oracion",
			Title:       "Respiración y oración",
			Description: "Cuando llegue la ansiedad, respira despacio durante cinco minutos repitiendo una oración breve.",
			Difficulty:  DifficultyEasy,
			Type:        ActionPractical,
			Tags:        tags([]Root{RootAnsiedad, RootEstresCronico}, CategoryMental),
		},
		{
			ID:          "consejeria",
			Title:       "Buscar consejería profesional",
			Description: "Pide a tu líder una recomendación y agenda una primera cita con un consejero.",
			Difficulty:  DifficultyHard,
			Type:        ActionPractical,
			Tags:        tags([]Root{RootAbusoInfancia, RootTraumaSexual, RootDepresion}, CategoryTrauma, CategoryMental),
		},
		{
			ID:          "filtro-contenido",
			Title:       "Filtros y límites de pantalla",
			Description: "Instala un filtro de contenido y define un horario sin pantallas por la noche.",
			Difficulty:  DifficultyEasy,
			Type:        ActionPractical,
			Tags:        tags([]Root{RootExposicionContenido, RootHabitosArraigados}, CategoryBehavior),
		},
		{
			ID:          "plan-tiempo-libre",
			Title:       "Planificar el tiempo libre",
			Description: "Escribe qué harás en tus horas libres de esta semana antes de que lleguen.",
			Difficulty:  DifficultyEasy,
			Type:        ActionPractical,
			Tags:        tags([]Root{RootAburrimiento}, CategoryBehavior),
		},
		{
			ID:          "servicio",
			Title:       "Servir en un ministerio",
			Description: "Ofrécete para servir en un área donde nadie vea lo que haces.",
			Difficulty:  DifficultyMedium,
			Type:        ActionCommunity,
			Tags:        tags([]Root{RootOrgullo, RootBusquedaAprobacion}, CategorySpiritual, CategoryIdentity),
		},
		{
			ID:          "companero-rendicion",
			Title:       "Compañero de rendición de cuentas",
			Description: "Elige a una persona de confianza y repórtale tu avance cada semana.",
			Difficulty:  DifficultyMedium,
			Type:        ActionCommunity,
			Tags:        tags([]Root{RootFaltaRendicionCuenta, RootHabitosArraigados}, CategoryBehavior, CategoryRelationships),
		},
		{
			ID:          "dialogo-familiar",
			Title:       "Conversación honesta en familia",
			Description: "Prepara y ten una conversación tranquila con tu familia sobre lo que te duele.",
			Difficulty:  DifficultyHard,
			Type:        ActionPractical,
			Tags:        tags([]Root{RootConflictoFamiliar, RootMamaControladora}, CategoryFamily, CategoryRelationships),
		},
	},
}
