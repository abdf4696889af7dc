package repos

import "github.com/jmoiron/sqlx"

// setStatus performs a compare-and-swap on a status column: the write lands
// only if the row still holds one of the expected source statuses. Callers
// check the returned bool to detect a lost race or an out-of-order transition.
func setStatus(e sqlx.Ext, table, id, to string, from []string) (bool, error) {
	q, args, err := sqlx.In(
		`UPDATE `+table+` SET status = ? WHERE id = ? AND status IN (?)`, to, id, from)
	if err != nil {
		return false, err
	}
	res, err := e.Exec(q, args...)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
