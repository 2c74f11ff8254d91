package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"text/template"
)

// EmbeddedLocales contém as traduções distribuídas com o binário
//
//go:embed locales/*.json
var EmbeddedLocales embed.FS

// message guarda o texto cru e, quando há placeholders, o template já compilado
type message struct {
	text string
	tmpl *template.Template
}

// Service resolve mensagens por idioma. É imutável depois de criado,
// então pode ser compartilhado entre goroutines sem lock.
type Service struct {
	catalogs        map[string]map[string]message // [language][key]
	languages       []string
	defaultLanguage string
}

// NewService carrega os <idioma>.json de um diretório do sistema de arquivos
func NewService(localesDir, defaultLang string) (*Service, error) {
	return NewServiceFromFS(os.DirFS(localesDir), ".", defaultLang)
}

// NewEmbeddedService usa as traduções embutidas no binário
func NewEmbeddedService(defaultLang string) (*Service, error) {
	return NewServiceFromFS(EmbeddedLocales, "locales", defaultLang)
}

// NewServiceFromFS carrega todos os <idioma>.json de dir dentro de fsys.
// Templates inválidos falham aqui, não na hora de traduzir.
func NewServiceFromFS(fsys fs.FS, dir, defaultLang string) (*Service, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", dir)
	}

	s := &Service{
		catalogs:        make(map[string]map[string]message, len(files)),
		defaultLanguage: defaultLang,
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		catalog, err := loadCatalog(fsys, file)
		if err != nil {
			return nil, err
		}

		s.catalogs[lang] = catalog
		s.languages = append(s.languages, lang)
	}
	sort.Strings(s.languages)

	if _, ok := s.catalogs[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

func loadCatalog(fsys fs.FS, file string) (map[string]message, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
	}

	catalog := make(map[string]message, len(raw))
	for key, text := range raw {
		msg := message{text: text}
		if strings.Contains(text, "{{") {
			tmpl, err := template.New(key).Parse(text)
			if err != nil {
				return nil, fmt.Errorf("invalid template for key %s in %s: %w", key, file, err)
			}
			msg.tmpl = tmpl
		}
		catalog[key] = msg
	}

	return catalog, nil
}

// T traduz key para lang, caindo para o idioma padrão e depois para a própria chave.
// O primeiro mapa de params alimenta os placeholders ({{.Name}}, {{.Error}}...).
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	msg, ok := s.lookup(lang, key)
	if !ok {
		msg, ok = s.lookup(s.defaultLanguage, key)
	}
	if !ok {
		return key
	}

	if msg.tmpl == nil || len(params) == 0 {
		return msg.text
	}

	var sb strings.Builder
	if err := msg.tmpl.Execute(&sb, params[0]); err != nil {
		return msg.text
	}
	return sb.String()
}

func (s *Service) lookup(lang, key string) (message, bool) {
	msg, ok := s.catalogs[lang][key]
	return msg, ok
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna os idiomas carregados em ordem alfabética
func (s *Service) GetSupportedLanguages() []string {
	out := make([]string, len(s.languages))
	copy(out, s.languages)
	return out
}

// IsLanguageSupported verifica se um idioma foi carregado
func (s *Service) IsLanguageSupported(lang string) bool {
	_, ok := s.catalogs[lang]
	return ok
}

// MissingKeys lista, em ordem, as chaves do idioma padrão ausentes em lang
func (s *Service) MissingKeys(lang string) []string {
	catalog := s.catalogs[lang]

	var missing []string
	for key := range s.catalogs[s.defaultLanguage] {
		if _, ok := catalog[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
