package gemini

import (
	"fmt"
	"strings"

	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

func buildPrompt(business *domain.BusinessProfile, strategy *domain.MarketingStrategy, count int) string {
	var b strings.Builder

	b.WriteString("ACTÚA COMO UN PSICÓLOGO DE VENTAS Y REDACTOR DE ÉLITE.\n")
	fmt.Fprintf(&b, "Contexto Negocio: %s (%s).\n", business.Name, business.Niche)

	if business.TargetAudience != "" {
		fmt.Fprintf(&b, "Público objetivo: %s.\n", business.TargetAudience)
	}
	if business.Persona != nil {
		fmt.Fprintf(&b, "CLIENTE IDEAL: %s.", business.Demographics())
		if len(business.Persona.Interests) > 0 {
			fmt.Fprintf(&b, " Intereses: %s.", strings.Join(business.Persona.Interests, ", "))
		}
		if len(business.Persona.PainPoints) > 0 {
			fmt.Fprintf(&b, " DOLORES CRÍTICOS: %s.", strings.Join(business.Persona.PainPoints, ", "))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("CLIENTE IDEAL: Público General.\n")
	}

	if strategy != nil {
		fmt.Fprintf(&b, "Estrategia Activa: %s (%s).\n", strategy.Name, strategy.Objective)
		stages := make([]string, 0, len(strategy.Structure))
		for _, block := range strategy.Structure {
			if block.FunnelStage != "" {
				stages = append(stages, string(block.FunnelStage))
			}
		}
		if len(stages) > 0 {
			fmt.Fprintf(&b, "Etapas del embudo: %s.\n", strings.Join(stages, ", "))
		}
	}

	fmt.Fprintf(&b, "\nTAREA: Crea %d variantes de anuncio en ESPAÑOL que hablen directamente al subconsciente de este comprador.\n", count)
	b.WriteString(`FORMATO JSON ESTRICTO:
{
  "copies": [
    {
      "headline": "Título de impacto (Max 40 chars)",
      "primaryText": "Cuerpo del anuncio usando Storytelling + AIDA",
      "description": "Subtítulo que refuerza la oferta",
      "cta": "Valor API Meta (ej: SHOP_NOW, ORDER_NOW, LEARN_MORE)",
      "angle": "Ángulo de venta usado",
      "visual_direction": "Instrucción visual para la pieza que acompañará el texto",
      "funnel_stage": "COLD | WARM | HOT"
    }
  ]
}`)

	return b.String()
}
