package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/observability"
	"log/slog"
	"sync"
)

// Room ties the name registry and the broadcast set together and speaks the presence protocol.
// Join and leave sequences are serialized so every client sees roster changes in one global order:
// a roster resend can never reach a client after the USERLEFT that made it stale.
// Chat lines are not serialized; only per-channel order matters for them.
type Room struct {
	mu        sync.Mutex
	log       *slog.Logger
	registry  contract.INameRegistry
	members   contract.IBroadcastSet
	moderator contract.IModerator
	metrics   *observability.Metrics
}

func NewRoom(
	log *slog.Logger,
	registry contract.INameRegistry,
	members contract.IBroadcastSet,
	moderator contract.IModerator,
	metrics *observability.Metrics,
) *Room {
	return &Room{
		log:       log,
		registry:  registry,
		members:   members,
		moderator: moderator,
		metrics:   metrics,
	}
}

// Claim tries to commit name for channel and acknowledges it.
// NAMEACCEPTED is queued before Direct can find the name, so it is always the first line after the prompt.
func (r *Room) Claim(name domain.DisplayName, channel contract.OutboundChannel) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.registry.TryRegister(name, channel) {
		r.metrics.NameRejected()
		return false
	}
	r.metrics.NameAccepted()
	r.deliver(channel, domain.NameAccepted)
	return true
}

// Join runs the join sequence for a committed name: membership, announcement,
// then a full roster resend to everyone.
func (r *Room) Join(name domain.DisplayName, channel contract.OutboundChannel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.members.Add(channel)
	r.broadcast(domain.JoinedLine(name))
	r.broadcast(domain.ClearRoster)
	for _, present := range r.registry.Names() {
		r.broadcast(domain.OnlineUserLine(present))
	}
	r.log.Info("Participant joined", "name", name, "participants", r.members.Len())
}

// Leave frees name, drops channel from fan-out and tells the remaining participants.
func (r *Room) Leave(name domain.DisplayName, channel contract.OutboundChannel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.registry.Release(name)
	r.members.Remove(channel)
	r.metrics.ParticipantLeft()
	r.broadcast(domain.UserLeftLine(name))
	r.broadcast(domain.LeftLine(name))
	r.log.Info("Participant left", "name", name, "participants", r.members.Len())
}

// Broadcast relays a chat line from sender to every member, sender included.
func (r *Room) Broadcast(sender domain.DisplayName, body string) {
	failed := r.broadcast(domain.ChatLine(sender, r.censor(body)))
	r.metrics.Broadcast(failed)
}

// Direct delivers body to recipient only. It reports false when nobody holds that name;
// the message is then dropped without telling the sender.
func (r *Room) Direct(sender, recipient domain.DisplayName, body string) bool {
	body = r.censor(body)

	r.mu.Lock()
	defer r.mu.Unlock()

	channel, ok := r.registry.Lookup(recipient)
	if !ok {
		r.metrics.Directed(false)
		r.log.Debug("Directed message dropped, unknown recipient", "sender", sender, "recipient", recipient)
		return false
	}
	r.metrics.Directed(true)
	r.deliver(channel, domain.ChatLine(sender, body))
	return true
}

// Names is the current roster.
func (r *Room) Names() []domain.DisplayName {
	return r.registry.Names()
}

func (r *Room) Participants() int {
	return r.members.Len()
}

// broadcast sends line to a snapshot of the members and returns how many deliveries failed.
// A failing channel is skipped; its own session cleans it up.
func (r *Room) broadcast(line string) int {
	failed := 0
	r.members.ForEach(func(channel contract.OutboundChannel) {
		if err := channel.Send(line); err != nil {
			failed++
			r.log.Debug("Delivery failed", "error", err)
		}
	})
	return failed
}

func (r *Room) deliver(channel contract.OutboundChannel, line string) {
	if err := channel.Send(line); err != nil {
		r.metrics.DeliveryFailed()
		r.log.Debug("Delivery failed", "error", err)
	}
}

func (r *Room) censor(body string) string {
	if r.moderator == nil {
		return body
	}
	return r.moderator.Censor(body)
}
