package message

import (
	"fmt"

	"golang.org/x/text/language"
)

// supported lists the catalog languages; the first entry is the fallback.
var supported = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// SupportedLanguages returns the languages the catalog is maintained in.
func SupportedLanguages() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// catalog maps a status code to its per-language message templates.
// Templates use fmt verbs filled from the positional args of CreateStatus.
var catalog = map[int]map[language.Tag]string{
	StatusFound: {
		language.English: "OK",
		language.German:  "OK",
		language.French:  "OK",
		language.Spanish: "OK",
	},
	StatusSchemaViolation: {
		language.English: "item of type %v violates its schema: %v",
		language.German:  "Element vom Typ %v verletzt sein Schema: %v",
		language.French:  "l'élément de type %v viole son schéma : %v",
		language.Spanish: "el elemento de tipo %v viola su esquema: %v",
	},
	StatusSchemaEngineError: {
		language.English: "schema validation engine failed: %v",
		language.German:  "Schema-Validierung fehlgeschlagen (Engine-Fehler): %v",
		language.French:  "échec du moteur de validation de schéma : %v",
		language.Spanish: "fallo del motor de validación de esquemas: %v",
	},
	StatusInvalidID: {
		language.English: "invalid identifier %q: not a registered qualified term or IRI",
		language.German:  "ungültiger Bezeichner %q: weder registrierter qualifizierter Term noch IRI",
		language.French:  "identifiant %q invalide : ni terme qualifié enregistré ni IRI",
		language.Spanish: "identificador %q no válido: no es un término cualificado registrado ni un IRI",
	},
	StatusImmutableID: {
		language.English: "id is immutable: is %q, cannot change to %q",
		language.German:  "id ist unveränderlich: ist %q, kann nicht zu %q geändert werden",
		language.French:  "id est immuable : vaut %q, ne peut pas devenir %q",
		language.Spanish: "id es inmutable: es %q, no puede cambiarse a %q",
	},
	StatusImmutableSpecializes: {
		language.English: "specializes is immutable: is %q, cannot change to %q",
		language.German:  "specializes ist unveränderlich: ist %q, kann nicht zu %q geändert werden",
		language.French:  "specializes est immuable : vaut %q, ne peut pas devenir %q",
		language.Spanish: "specializes es inmutable: es %q, no puede cambiarse a %q",
	},
	StatusWrongItemType: {
		language.English: "item type mismatch: expected %q, got %q",
		language.German:  "Elementtyp stimmt nicht überein: erwartet %q, erhalten %q",
		language.French:  "type d'élément incorrect : attendu %q, reçu %q",
		language.Spanish: "tipo de elemento incorrecto: se esperaba %q, se recibió %q",
	},
	StatusNotAnArray: {
		language.English: "field %q must be an array of identifiers",
		language.German:  "Feld %q muss eine Liste von Bezeichnern sein",
		language.French:  "le champ %q doit être une liste d'identifiants",
		language.Spanish: "el campo %q debe ser una lista de identificadores",
	},
	StatusArrayBelowMinCount: {
		language.English: "field %q needs at least %d entries",
		language.German:  "Feld %q benötigt mindestens %d Einträge",
		language.French:  "le champ %q requiert au moins %d entrées",
		language.Spanish: "el campo %q necesita al menos %d entradas",
	},
	StatusInvalidArrayEntry: {
		language.English: "field %q contains an invalid identifier %q",
		language.German:  "Feld %q enthält einen ungültigen Bezeichner %q",
		language.French:  "le champ %q contient un identifiant %q invalide",
		language.Spanish: "el campo %q contiene un identificador %q no válido",
	},
	StatusInvalidText: {
		language.English: "field %q is not a valid multi-language text",
		language.German:  "Feld %q ist kein gültiger mehrsprachiger Text",
		language.French:  "le champ %q n'est pas un texte multilingue valide",
		language.Spanish: "el campo %q no es un texto multilingüe válido",
	},
	StatusTextMissingLanguage: {
		language.English: "field %q has multiple text entries; every entry needs a language tag",
		language.German:  "Feld %q hat mehrere Texteinträge; jeder Eintrag braucht ein Sprachkennzeichen",
		language.French:  "le champ %q a plusieurs entrées ; chacune requiert une balise de langue",
		language.Spanish: "el campo %q tiene varias entradas; cada una necesita una etiqueta de idioma",
	},
	StatusConstraintViolation: {
		language.English: "package-level constraint violated: %v",
		language.German:  "paketweite Bedingung verletzt: %v",
		language.French:  "contrainte de niveau paquet violée : %v",
		language.Spanish: "restricción a nivel de paquete violada: %v",
	},
	StatusNotImplemented: {
		language.English: "%v is not implemented",
		language.German:  "%v ist nicht implementiert",
		language.French:  "%v n'est pas implémenté",
		language.Spanish: "%v no está implementado",
	},
}

// text resolves the localized message for a code, falling back to English
// for unsupported languages and to a generic text for unknown codes.
func text(code int, lang language.Tag, args ...any) string {
	if code == StatusOK {
		return ""
	}

	templates, ok := catalog[code]
	if !ok {
		return fmt.Sprintf("status %d", code)
	}

	_, index, _ := matcher.Match(lang)
	template, ok := templates[supported[index]]
	if !ok {
		template = templates[language.English]
	}
	return fmt.Sprintf(template, args...)
}
