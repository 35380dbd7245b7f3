package deploying

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

const (
	defaultAgeMin   = 18
	defaultAgeMax   = 65
	lookalikeRatio  = 0.01
	expansionOption = "expansion"
)

var (
	devicePlatforms    = []string{"mobile", "desktop"}
	publisherPlatforms = []string{"facebook", "instagram", "audience_network", "messenger"}
	numberPattern      = regexp.MustCompile(`\d+`)
)

type AgeRange struct {
	Min int
	Max int
}

// PersonaHints são os sinais da persona usados quando o bloco não define os seus
type PersonaHints struct {
	Age       AgeRange
	Interests []string
}

type GeoDefaults struct {
	BusinessCountry string
	Countries       []string
}

// ExtractAgeRange lê as idades do texto livre de demografia
func ExtractAgeRange(demographics string) AgeRange {
	numbers := make([]int, 0, 2)
	for _, match := range numberPattern.FindAllString(demographics, -1) {
		n, err := strconv.Atoi(match)
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}

	switch {
	case len(numbers) >= 2:
		return AgeRange{Min: numbers[0], Max: numbers[1]}
	case len(numbers) == 1:
		return AgeRange{Min: numbers[0], Max: defaultAgeMax}
	default:
		return AgeRange{Min: defaultAgeMin, Max: defaultAgeMax}
	}
}

// BuildTargeting monta o objeto de segmentação de um AdSet
func BuildTargeting(spec *domain.TargetingSpec, persona PersonaHints, geo GeoDefaults) domain.Targeting {
	if spec == nil {
		spec = &domain.TargetingSpec{Type: domain.TargetingBroad}
	}

	countries := resolveCountries(spec, geo)
	targeting := domain.Targeting{
		GeoLocations:       domain.GeoLocations{Countries: countries},
		AgeMin:             pickAge(spec.AgeMin, persona.Age.Min, defaultAgeMin),
		AgeMax:             pickAge(spec.AgeMax, persona.Age.Max, defaultAgeMax),
		DevicePlatforms:    append([]string(nil), devicePlatforms...),
		PublisherPlatforms: append([]string(nil), publisherPlatforms...),
	}

	if len(spec.Genders) > 0 {
		targeting.Genders = append([]int(nil), spec.Genders...)
	}
	if len(spec.Locales) > 0 {
		targeting.Locales = append([]int(nil), spec.Locales...)
	}

	for _, city := range spec.Cities {
		if city = strings.TrimSpace(city); city != "" {
			targeting.GeoLocations.Cities = append(targeting.GeoLocations.Cities, domain.CityTarget{Key: city})
		}
	}

	var flexible domain.FlexibleSpec
	if spec.Type == domain.TargetingInterests {
		combined := make([]string, 0, len(spec.Interests)+len(persona.Interests))
		combined = append(combined, spec.Interests...)
		combined = append(combined, persona.Interests...)
		flexible.Interests = toEntities(combined)
		targeting.TargetingOptimization = expansionOption
	}
	if len(spec.Behaviors) > 0 {
		flexible.Behaviors = toEntities(spec.Behaviors)
	}
	if len(flexible.Interests) > 0 || len(flexible.Behaviors) > 0 {
		targeting.FlexibleSpec = []domain.FlexibleSpec{flexible}
	}

	excluded := domain.TargetingExclusions{
		Interests:       toEntities(spec.ExcludedInterests),
		CustomAudiences: toIDEntities(spec.ExcludedCustomAudiences),
	}
	if len(excluded.Interests) > 0 || len(excluded.CustomAudiences) > 0 {
		targeting.Exclusions = &excluded
	}

	if len(spec.CustomAudiences) > 0 {
		targeting.CustomAudiences = toIDEntities(spec.CustomAudiences)
	}

	if spec.LookalikeSourceID != "" {
		targeting.LookalikeSpec = &domain.LookalikeSpec{
			Ratio:   lookalikeRatio,
			Country: countries[0],
			Origin:  []domain.LookalikeOrigin{{ID: spec.LookalikeSourceID, Type: "custom_audience"}},
		}
	}

	// retargeting liga o Advantage+ mesmo quando há públicos declarados
	if spec.Type == domain.TargetingRetargeting {
		enabled := 1
		targeting.AdvantagePlusAudience = &enabled
		targeting.TargetingAutomation = &domain.TargetingAutomation{
			AdvantageDetailedTargeting: 1,
			AdvantageLookalike:         1,
		}
	}

	return targeting
}

func resolveCountries(spec *domain.TargetingSpec, geo GeoDefaults) []string {
	if countries := nonEmpty(spec.Countries); len(countries) > 0 {
		return countries
	}
	if country := strings.TrimSpace(geo.BusinessCountry); country != "" {
		return []string{strings.ToUpper(country)}
	}
	if countries := nonEmpty(geo.Countries); len(countries) > 0 {
		return countries
	}
	return []string{"CO", "MX", "ES", "US"}
}

func pickAge(specValue, personaValue, fallback int) int {
	if specValue > 0 {
		return specValue
	}
	if personaValue > 0 {
		return personaValue
	}
	return fallback
}

// toEntities usa id quando o valor é numérico e nome caso contrário, sem repetir valores
func toEntities(values []string) []domain.TargetingEntity {
	seen := make(map[string]struct{}, len(values))
	entities := make([]domain.TargetingEntity, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		key := strings.ToLower(value)
		if value == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		if isNumeric(value) {
			entities = append(entities, domain.TargetingEntity{ID: value})
			continue
		}
		entities = append(entities, domain.TargetingEntity{Name: value})
	}
	return entities
}

func toIDEntities(ids []string) []domain.TargetingEntity {
	entities := make([]domain.TargetingEntity, 0, len(ids))
	for _, id := range nonEmpty(ids) {
		entities = append(entities, domain.TargetingEntity{ID: id})
	}
	return entities
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func isNumeric(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return value != ""
}
