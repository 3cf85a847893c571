package graph

// Schema is the SDL consumed by graph-gophers. Resolver methods on Resolver
// and the view types in resolver.go must stay in sync with it.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	scalar Int64

	type Query {
		appointments(filter: AppointmentsFilter): [Appointment!]!
	}

	type Mutation {
		auth(username: String!, password: String!): AuthPayload!
		refresh(refreshToken: String!): RefreshPayload!
		appointment(therapistId: Int, startTimeUnixSeconds: Int64!, durationSeconds: Int64!, type: String!): Appointment!
	}

	input Int64Range {
		begin: Int64!
		end: Int64!
	}

	input AppointmentsFilter {
		type: String
		typeIn: [String!]
		startTimeUnixSecondsRange: Int64Range
		hasSpecialisms: [String!]
	}

	type Appointment {
		appointmentId: ID!
		startTimeUnixSeconds: Int64!
		durationSeconds: Int64!
		type: String!
		therapist: Therapist
	}

	type Therapist {
		therapistId: ID!
		firstName: String!
		lastName: String!
		specialisms: [Specialism!]!
	}

	type Specialism {
		specialismId: ID!
		specialismName: String!
	}

	type AuthPayload {
		accessToken: String!
		refreshToken: String!
	}

	type RefreshPayload {
		newToken: String!
	}
`
