// Package content holds the root-cause taxonomy, the tagged corpus of
// scriptures, prayers and actions, and the matcher that ranks the corpus
// against a set of identified root causes.
package content

type Root string

type Category string

const (
	CategorySpiritual     Category = "spiritual"
	CategoryIdentity      Category = "identity"
	CategoryFamily        Category = "family"
	CategoryTrauma        Category = "trauma"
	CategoryRelationships Category = "relationships"
	CategoryMental        Category = "mental"
	CategoryBehavior      Category = "behavior"
)

var Categories = []Category{
	CategorySpiritual,
	CategoryIdentity,
	CategoryFamily,
	CategoryTrauma,
	CategoryRelationships,
	CategoryMental,
	CategoryBehavior,
}

const (
	RootFaltaIntimidadDios   Root = "falta-intimidad-dios"
	RootBibliaDescuidada     Root = "biblia-descuidada"
	RootSequiaEspiritual     Root = "sequia-espiritual"
	RootFaltaConfesion       Root = "falta-confesion"
	RootFaltaPerdon          Root = "falta-perdon"
	RootCorazonEndurecido    Root = "corazon-endurecido"
	RootRebeldia             Root = "rebeldia"
	RootOrgullo              Root = "orgullo"
	RootIdentidadConfusa     Root = "identidad-confusa"
	RootBajaAutoestima       Root = "baja-autoestima"
	RootRechazoPropio        Root = "rechazo-propio"
	RootBusquedaAprobacion   Root = "busqueda-aprobacion"
	RootPapaAusente          Root = "papa-ausente"
	RootMamaControladora     Root = "mama-controladora"
	RootConflictoFamiliar    Root = "conflicto-familiar"
	RootDivorcioPadres       Root = "divorcio-padres"
	RootAbusoInfancia        Root = "abuso-infancia"
	RootPerdidaDuelo         Root = "perdida-duelo"
	RootTraumaSexual         Root = "trauma-sexual"
	RootSoledad              Root = "soledad"
	RootAmistadesToxicas     Root = "amistades-toxicas"
	RootRupturaAmorosa       Root = "ruptura-amorosa"
	RootAnsiedad             Root = "ansiedad"
	RootDepresion            Root = "depresion"
	RootEstresCronico        Root = "estres-cronico"
	RootHabitosArraigados    Root = "habitos-arraigados"
	RootAburrimiento         Root = "aburrimiento"
	RootExposicionContenido  Root = "exposicion-contenido"
	RootFaltaRendicionCuenta Root = "falta-rendicion-cuentas"
)

type RootInfo struct {
	ID       Root     `json:"id"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
}

// Taxonomy is the fixed list of root causes offered by the questionnaire,
// grouped by category in display order.
var Taxonomy = []RootInfo{
	{RootFaltaIntimidadDios, "Falta de intimidad con Dios", CategorySpiritual},
	{RootBibliaDescuidada, "Lectura de la Biblia descuidada", CategorySpiritual},
	{RootSequiaEspiritual, "Sequía espiritual", CategorySpiritual},
	{RootFaltaConfesion, "Pecado sin confesar", CategorySpiritual},
	{RootFaltaPerdon, "Falta de perdón", CategorySpiritual},
	{RootCorazonEndurecido, "Corazón endurecido", CategorySpiritual},
	{RootRebeldia, "Rebeldía", CategorySpiritual},
	{RootOrgullo, "Orgullo", CategorySpiritual},
	{RootIdentidadConfusa, "Identidad confusa", CategoryIdentity},
	{RootBajaAutoestima, "Baja autoestima", CategoryIdentity},
	{RootRechazoPropio, "Rechazo de uno mismo", CategoryIdentity},
	{RootBusquedaAprobacion, "Búsqueda de aprobación", CategoryIdentity},
	{RootPapaAusente, "Papá ausente", CategoryFamily},
	{RootMamaControladora, "Mamá controladora", CategoryFamily},
	{RootConflictoFamiliar, "Conflicto familiar", CategoryFamily},
	{RootDivorcioPadres, "Divorcio de los padres", CategoryFamily},
	{RootAbusoInfancia, "Abuso en la infancia", CategoryTrauma},
	{RootPerdidaDuelo, "Pérdida o duelo", CategoryTrauma},
	{RootTraumaSexual, "Trauma sexual", CategoryTrauma},
	{RootSoledad, "Soledad", CategoryRelationships},
	{RootAmistadesToxicas, "Amistades tóxicas", CategoryRelationships},
	{RootRupturaAmorosa, "Ruptura amorosa", CategoryRelationships},
	{RootAnsiedad, "Ansiedad", CategoryMental},
	{RootDepresion, "Depresión", CategoryMental},
	{RootEstresCronico, "Estrés crónico", CategoryMental},
	{RootHabitosArraigados, "Hábitos arraigados", CategoryBehavior},
	{RootAburrimiento, "Aburrimiento u ocio", CategoryBehavior},
	{RootExposicionContenido, "Exposición a contenido", CategoryBehavior},
	{RootFaltaRendicionCuenta, "Falta de rendición de cuentas", CategoryBehavior},
}

var (
	categoryOf = make(map[Root]Category, len(Taxonomy))
	labelOf    = make(map[Root]string, len(Taxonomy))
)

func init() {
	for _, info := range Taxonomy {
		categoryOf[info.ID] = info.Category
		labelOf[info.ID] = info.Label
	}
}

// CategoryOf reports the category of a taxonomy root.
func CategoryOf(r Root) (Category, bool) {
	c, ok := categoryOf[r]
	return c, ok
}

// Label returns the display label for id, or id itself when it is not part of the taxonomy.
func Label(id string) string {
	if l, ok := labelOf[Root(id)]; ok {
		return l
	}
	return id
}

// ParseRoots splits raw identifiers into taxonomy roots and unknown ids.
// Duplicates are dropped, order is preserved.
func ParseRoots(ids []string) ([]Root, []string) {
	known := make([]Root, 0, len(ids))
	unknown := make([]string, 0)
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := categoryOf[Root(id)]; ok {
			known = append(known, Root(id))
			continue
		}
		unknown = append(unknown, id)
	}
	return known, unknown
}

// ParseCategories splits raw identifiers into known categories and unknown ids.
func ParseCategories(ids []string) ([]Category, []string) {
	known := make([]Category, 0, len(ids))
	unknown := make([]string, 0)
	for _, id := range ids {
		if validCategory(Category(id)) {
			known = append(known, Category(id))
			continue
		}
		unknown = append(unknown, id)
	}
	return known, unknown
}

// CategoriesFor maps roots onto their categories, first-seen order, no duplicates.
func CategoriesFor(roots []Root) []Category {
	result := make([]Category, 0, len(roots))
	seen := make(map[Category]struct{}, len(roots))
	for _, r := range roots {
		c, ok := categoryOf[r]
		if !ok {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		result = append(result, c)
	}
	return result
}

func validCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
