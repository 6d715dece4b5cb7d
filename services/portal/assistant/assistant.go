// Package assistant implements the portal's keyword-matched chat helper.
// Replies are canned; the first matching rule in declaration order wins, so
// "help me pay" lands on payments even though "help" alone is an emergency
// query.
package assistant

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
)

// Intents the assistant recognizes.
const (
	IntentGreeting   = "greeting"
	IntentVisitor    = "visitor"
	IntentPayment    = "payment"
	IntentEmergency  = "emergency"
	IntentRules      = "rules"
	IntentFacilities = "facilities"
	IntentContact    = "contact"
	IntentEvents     = "events"
	IntentProperty   = "property"
	IntentPolls      = "polls"
	IntentThanks     = "thanks"
	IntentFarewell   = "farewell"
	IntentFallback   = "fallback"
)

var (
	greetingRe = regexp.MustCompile(`^(hi|hello|hey|good morning|good evening)`)
	thanksRe   = regexp.MustCompile(`(thank|thanks|thx)`)
	farewellRe = regexp.MustCompile(`(bye|goodbye|see you|later)`)
)

type rule struct {
	intent string
	match  func(msg string) bool
	reply  string
}

// Assistant answers resident questions from a fixed, ordered rule table.
type Assistant struct {
	rules []rule
}

// New creates the assistant with its built-in rule table.
func New() *Assistant {
	return &Assistant{rules: []rule{
		{IntentGreeting, greetingRe.MatchString,
			"Hello! 😊 Welcome to Green Avenue. I can help you with:\n\n• 🎫 Visitor registration\n• 💰 Payment queries\n• 📢 Community notices\n• 🔧 Service requests\n• 📞 Emergency contacts\n\nWhat would you like to know?"},
		{IntentVisitor, containsAny("visitor", "guest"),
			"🎫 **Visitor Management**\n\nTo register a visitor:\n1. Go to **Visitors** page\n2. Click **Add Visitor**\n3. Enter visitor details\n4. Share the OTP with your guest\n\nThe OTP is valid for 24 hours. You can also share it via WhatsApp!\n\nNeed help with anything else?"},
		{IntentPayment, containsAny("payment", "maintenance", "fee", "pay"),
			"💰 **Maintenance Payments**\n\n• Monthly maintenance: ₹1,500\n• Due date: 5th of every month\n• Late fee: ₹100 after 10th\n\n**Payment Methods:**\n• UPI: greenavenue@paytm\n• Bank Transfer: HDFC XXXX1234\n• QR Code: Available on Payments page\n\nGo to **Payments** page to submit your payment receipt."},
		{IntentEmergency, containsAny("emergency", "urgent", "help"),
			"🚨 **Emergency Contacts**\n\n• 🚔 Police: 100\n• 🚒 Fire: 101\n• 🚑 Ambulance: 102\n• 🛡️ Security: 9876543210\n• 👨‍💼 Association: 9876543211\n\nFor non-emergencies, submit a **Service Request**."},
		{IntentRules, containsAny("rule", "regulation", "guideline"),
			"📋 **Community Guidelines**\n\n• 🔇 Quiet hours: 10 PM - 7 AM\n• 🚗 Parking: Designated spots only\n• 🐕 Pets: Keep on leash in common areas\n• 🚮 Garbage: Segregate & dispose by 8 AM\n• 🏗️ Renovations: Prior approval needed\n\nCheck **Notices** for latest updates!"},
		{IntentFacilities, containsAny("facility", "amenity", "gym", "pool", "park"),
			"🏢 **Community Facilities**\n\n• 🏋️ Gym: 6 AM - 10 PM\n• 🏊 Pool: 6 AM - 8 PM\n• 🌳 Park: Always open\n• 🎉 Clubhouse: Book via requests\n• 🚗 Parking: 2 spots per unit\n\nBook facilities through **Service Requests**."},
		{IntentContact, containsAny("contact", "support", "call", "reach"),
			"📞 **Contact Information**\n\n• **Office Hours:** 9 AM - 6 PM\n• **Association Email:** info@greenavenue.com\n• **Security:** 9876543210\n• **Maintenance:** 9876543211\n\nOr submit a **Service Request** anytime!"},
		{IntentEvents, containsAny("event", "festival", "celebration"),
			"🎉 **Upcoming Events**\n\nCheck the **Notices** section for:\n• Community gatherings\n• Festival celebrations\n• Annual general meetings\n• Sports tournaments\n\nWant to organize an event? Contact the association!"},
		{IntentProperty, containsAny("rent", "sale", "property", "flat"),
			"🏠 **Property Listings**\n\nLooking to rent or buy?\n→ Check **Properties** page\n\nWant to list your property?\n1. Go to **Properties**\n2. Click **Add Listing**\n3. Fill in details\n\n*Note: Only owners can list properties.*"},
		{IntentPolls, containsAny("poll", "vote", "survey"),
			"🗳️ **Community Polls**\n\nActive polls are on the **Polls** page.\n\n• Each resident gets one vote\n• Vote before the deadline\n• Results shown after voting ends\n\nYour voice matters! 🎯"},
		{IntentThanks, thanksRe.MatchString,
			"You're welcome! 😊 Happy to help. Is there anything else you'd like to know about Green Avenue?"},
		{IntentFarewell, farewellRe.MatchString,
			"Goodbye! 👋 Have a great day. Feel free to chat anytime you need help!"},
	}}
}

// Reply answers a message with the first matching rule. Matching is
// case-insensitive; the fallback echoes the original message verbatim.
func (a *Assistant) Reply(message string) *models.ChatReply {
	msg := strings.ToLower(message)

	for _, r := range a.rules {
		if r.match(msg) {
			return &models.ChatReply{Intent: r.intent, Reply: r.reply}
		}
	}

	return &models.ChatReply{
		Intent: IntentFallback,
		Reply: fmt.Sprintf("I understand you're asking about %q. 🤔\n\nHere's what I can help with:\n\n"+
			"• 🎫 Visitor registration\n• 💰 Payment information\n• 📢 Notices & events\n• 🔧 Service requests\n"+
			"• 📞 Emergency contacts\n• 🏢 Facility bookings\n• 📋 Rules & guidelines\n\nTry asking about any of these topics!", message),
	}
}

func containsAny(keywords ...string) func(string) bool {
	return func(msg string) bool {
		for _, kw := range keywords {
			if strings.Contains(msg, kw) {
				return true
			}
		}
		return false
	}
}
