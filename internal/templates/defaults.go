// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package templates

import (
	"slices"

	"github.com/MKhiriev/click-storm/models"
)

// Built-in template ids.
const (
	ContactConfirmation = "contactConfirmation"
	QuoteConfirmation   = "quoteConfirmation"
	BookingConfirmation = "bookingConfirmation"
	PaymentReminder     = "paymentReminder"
	ThankYou            = "thankYou"
)

var builtins = models.EmailTemplates{
	ContactConfirmation: {
		Name:    "Confirmation de contact",
		Subject: "Merci pour votre message - click.storm51",
		Body: `Bonjour {{clientName}},

J'ai bien reçu votre message et je vous remercie pour l'intérêt que vous portez à mon travail.

Je vais étudier votre demande avec attention et vous recontacter dans les 24 heures pour discuter de votre projet photo.

En attendant, n'hésitez pas à consulter mon portfolio sur click.storm51.

Cordialement,
Eloi
Photographe click.storm51
📧 jeannoseloi@gmail.com
📱 +33 6 23 14 14 05
📍 Marne (51) et région Grand Est`,
		Variables: []string{"clientName", "service", "date"},
	},
	QuoteConfirmation: {
		Name:    "Envoi de devis",
		Subject: "Votre devis {{quoteNumber}} - click.storm51",
		Body: `Bonjour {{clientName}},

Suite à votre demande, veuillez trouver ci-joint votre devis personnalisé n° {{quoteNumber}}.

Service : {{service}}
Date de prestation : {{date}}
Montant total : {{totalAmount}} €

Ce devis est valable 30 jours. N'hésitez pas à me contacter pour toute question ou modification.

Cordialement,
Eloi
Photographe click.storm51
📧 jeannoseloi@gmail.com
📱 +33 6 23 14 14 05`,
		Variables: []string{"clientName", "quoteNumber", "service", "date", "totalAmount"},
	},
	BookingConfirmation: {
		Name:    "Confirmation de réservation",
		Subject: "Réservation confirmée pour le {{date}} - click.storm51",
		Body: `Bonjour {{clientName}},

Votre réservation est confirmée ! 🎉

📅 Date : {{date}}
📸 Service : {{service}}
💰 Montant : {{totalAmount}} €

Un acompte de 30% ({{depositAmount}} €) est demandé pour valider définitivement la réservation.

Je vous recontacte prochainement pour finaliser les détails de la prestation.

Au plaisir de travailler avec vous,
Eloi
Photographe click.storm51`,
		Variables: []string{"clientName", "date", "service", "totalAmount", "depositAmount"},
	},
	PaymentReminder: {
		Name:    "Rappel de paiement",
		Subject: "Rappel : Paiement prestation du {{date}}",
		Body: `Bonjour {{clientName}},

Je me permets de vous rappeler que le solde de votre prestation du {{date}} est à régler.

Montant restant : {{remainingAmount}} €

Merci de procéder au règlement avant la date de la prestation.

Cordialement,
Eloi`,
		Variables: []string{"clientName", "date", "remainingAmount"},
	},
	ThankYou: {
		Name:    "Remerciement après prestation",
		Subject: "Merci pour votre confiance ! 🙏",
		Body: `Bonjour {{clientName}},

Un grand merci pour votre confiance lors de notre collaboration du {{date}}.

Ce fut un réel plaisir de capturer ces moments précieux pour vous.

Vos photos seront disponibles d'ici 2-3 semaines. Je vous enverrai un lien de téléchargement sécurisé.

Si vous avez apprécié mon travail, n'hésitez pas à laisser un avis sur mon site : {{siteUrl}}/laisser-avis.html

À très bientôt,
Eloi
click.storm51`,
		Variables: []string{"clientName", "date", "siteUrl"},
	},
}

// Defaults returns a fresh copy of the built-in templates.
func Defaults() models.EmailTemplates {
	out := make(models.EmailTemplates, len(builtins))
	for id, tmpl := range builtins {
		tmpl.Variables = slices.Clone(tmpl.Variables)
		out[id] = tmpl
	}
	return out
}
