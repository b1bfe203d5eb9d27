/*
Package reward implements Reward contract which holds TAR token balances.

Reward contract is a NEP-17 compatible token, so it can be tracked and
controlled by N3 compatible network monitors and wallet software. New tokens
appear only through Mint method which is allowed to a single minter account.
After deployment the minter is the deployer, then minting right is passed to
the Contest contract with SetMinter. Mint returns false instead of failing
when it is not witnessed by the minter, so callers can tell a refused mint
from an invalid one.

Precision of the token is set once on deployment.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

TransferX notification. This is an enhanced transfer notification with details.
Mints made by Contest contract carry 0x01 (vote) or 0x02 (backfill) as the
first byte of details followed by the submission ID.

	TransferX:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: details
	    type: ByteArray
*/
package reward

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'circulation' -> int
   total amount of minted tokens
 - 'm' -> interop.Hash160
   account allowed to mint tokens
 - 'd' -> int
   token precision
 - a<interop.Hash160> -> int
   balance sheet of all token holders
*/
