package store

// Topic names an observable collection.
type Topic string

const (
	TopicItems    Topic = "items"
	TopicCart     Topic = "cart"
	TopicSettings Topic = "settings"
)

type subscriber struct {
	id int
	fn func()
}

// Subscribe registers fn for the given topic and returns an unsubscribe
// function that removes exactly that registration. Callbacks carry no
// payload; subscribers re-query the store. Notification is synchronous and
// runs in registration order after the mutation and its persistence write
// have completed.
func (s *Store) Subscribe(topic Topic, fn func()) func() {
	if fn == nil {
		return func() {}
	}
	s.nextSubID++
	id := s.nextSubID
	s.subs[topic] = append(s.subs[topic], subscriber{id: id, fn: fn})
	return func() {
		list := s.subs[topic]
		for i, sub := range list {
			if sub.id == id {
				s.subs[topic] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(topic Topic) {
	// Iterate a snapshot so callbacks that subscribe or unsubscribe do not
	// disturb this delivery round.
	list := append([]subscriber(nil), s.subs[topic]...)
	for _, sub := range list {
		sub.fn()
	}
}
