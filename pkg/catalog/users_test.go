package catalog

// User account tests, run as part of StoreTestSuite.

// TestCreateUser tests account creation.
func (s *StoreTestSuite) TestCreateUser() {
	user, err := s.store.CreateUser("alice", "$2a$10$fakehashfakehashfakehash")
	s.Require().NoError(err)
	s.NotZero(user.ID)
	s.Equal("alice", user.Username)
	s.False(user.CreatedAt.IsZero())
}

// TestCreateUserDuplicate tests that usernames are unique.
func (s *StoreTestSuite) TestCreateUserDuplicate() {
	_, err := s.store.CreateUser("alice", "hash-one")
	s.Require().NoError(err)

	_, err = s.store.CreateUser("alice", "hash-two")
	s.ErrorIs(err, ErrUsernameTaken)
}

// TestCreateUserMissingField tests that empty fields are rejected.
func (s *StoreTestSuite) TestCreateUserMissingField() {
	_, err := s.store.CreateUser("", "hash")
	s.ErrorIs(err, ErrMissingField)

	_, err = s.store.CreateUser("alice", "")
	s.ErrorIs(err, ErrMissingField)
}

// TestGetUserByUsername tests user lookup.
func (s *StoreTestSuite) TestGetUserByUsername() {
	created, err := s.store.CreateUser("bob", "stored-hash")
	s.Require().NoError(err)

	user, err := s.store.GetUserByUsername("bob")
	s.Require().NoError(err)
	s.Equal(created.ID, user.ID)
	s.Equal("bob", user.Username)
	s.Equal("stored-hash", user.PasswordHash)
}

// TestGetUserByUsernameNotFound tests lookup of a missing username.
func (s *StoreTestSuite) TestGetUserByUsernameNotFound() {
	_, err := s.store.GetUserByUsername("nobody")
	s.ErrorIs(err, ErrUserNotFound)
}

// TestUserExists tests the existence check.
func (s *StoreTestSuite) TestUserExists() {
	exists, err := s.store.UserExists("carol")
	s.Require().NoError(err)
	s.False(exists)

	_, err = s.store.CreateUser("carol", "hash")
	s.Require().NoError(err)

	exists, err = s.store.UserExists("carol")
	s.Require().NoError(err)
	s.True(exists)
}
